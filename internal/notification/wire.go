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

package notification

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/event"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/service"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/web"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initNotificationDAO,
		event.NewPushEventProducer,
		repository.NewNotificationRepository,
		service.NewNotificationService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initNotificationDAO(db *egorm.Component) (dao.NotificationDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewGORMNotificationDAO(db), nil
}
