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

package mindtracker

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/job"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/service"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/web"
	"github.com/mindblowndbs/mindblown/internal/notification"
	"github.com/mindblowndbs/mindblown/internal/user"
)

func InitModule(db *egorm.Component,
	userModule *user.Module,
	notiModule *notification.Module) (*Module, error) {
	wire.Build(
		initEntryDAO,
		repository.NewEntryRepository,
		service.NewMindTrackerService,
		job.NewReminderJob,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initEntryDAO(db *egorm.Component) (dao.EntryDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewGORMEntryDAO(db), nil
}
