// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package chatbot

import (
	"sync"
	"time"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/service"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initChatHistoryDAO,
		initRelayClient,
		initRateLimiter,
		repository.NewChatHistoryRepository,
		service.NewChatService,
		web.NewHandler,
		web.NewWSHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initChatHistoryDAO(db *egorm.Component) (dao.ChatHistoryDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewGORMChatHistoryDAO(db), nil
}

func initRelayClient() service.RelayClient {
	endpoint := econf.GetString("chatbot.endpoint")
	timeout := econf.GetDuration("chatbot.timeout")
	if timeout <= 0 {
		// 远端模型一轮推理能跑几分钟
		timeout = 5 * time.Minute
	}
	return service.NewRelayClient(endpoint, timeout)
}

func initRateLimiter() *service.RateLimiter {
	interval := econf.GetDuration("chatbot.minInterval")
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return service.NewRateLimiter(interval)
}
