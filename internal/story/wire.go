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

package story

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/interactive"
	"github.com/mindblowndbs/mindblown/internal/notification"
	"github.com/mindblowndbs/mindblown/internal/story/internal/events"
	"github.com/mindblowndbs/mindblown/internal/story/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/story/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/story/internal/service"
	"github.com/mindblowndbs/mindblown/internal/story/internal/web"
	"github.com/mindblowndbs/mindblown/internal/user"
)

func InitModule(db *egorm.Component, q mq.MQ,
	userModule *user.Module,
	intrModule *interactive.Module,
	notiModule *notification.Module) (*Module, error) {
	wire.Build(
		initStoryDAO,
		initCommentDAO,
		events.NewViewEventProducer,
		repository.NewStoryRepository,
		repository.NewCommentRepository,
		service.NewStoryService,
		service.NewCommentService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*interactive.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initStoryDAO(db *egorm.Component) (dao.StoryDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewGORMStoryDAO(db), nil
}

func initCommentDAO(db *egorm.Component) dao.CommentDAO {
	return dao.NewGORMCommentDAO(db)
}
