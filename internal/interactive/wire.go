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

package interactive

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/events"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/service"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/web"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initInteractiveDAO,
		repository.NewCachedInteractiveRepository,
		service.NewService,
		initConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initInteractiveDAO(db *egorm.Component) (dao.InteractiveDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewInteractiveDAO(db), nil
}

func initConsumer(svc service.InteractiveService, q mq.MQ) (*events.Consumer, error) {
	consumer, err := events.NewSyncConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	consumer.Start(context.Background())
	return consumer, nil
}
