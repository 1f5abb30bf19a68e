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

package service

import (
	"context"
	"errors"

	"github.com/lithammer/shortuuid/v4"

	"github.com/mindblowndbs/mindblown/internal/user/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/user/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

//go:generate mockgen -source=./user.go -package=svcmocks -destination=../../mocks/user.mock.go -mock_names=UserService=MockUserService UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 聚合场景批量拿用户信息，比如评论列表
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	ProfileByUsername(ctx context.Context, username string) (domain.User, error)
	// FindOrCreateByUsername 登录态建立之后补建本地档案，序列号注册时生成
	FindOrCreateByUsername(ctx context.Context, username string) (domain.User, error)
	// AllIds 全量用户 ID，给提醒任务扫描用
	AllIds(ctx context.Context) ([]int64, error)

	// UpdateNonSensitiveInfo 更新非敏感数据
	// 你可以在这里进一步补充究竟哪些数据会被更新
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号和用户名
	user.SN = ""
	user.Username = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	// 在系统内部，基本上都是用 ID 的
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) AllIds(ctx context.Context) ([]int64, error) {
	return svc.repo.AllIds(ctx)
}

func (svc *userService) ProfileByUsername(ctx context.Context, username string) (domain.User, error) {
	return svc.repo.FindByUsername(ctx, username)
}

func (svc *userService) FindOrCreateByUsername(ctx context.Context, username string) (domain.User, error) {
	// 大部分请求用户已经存在
	u, err := svc.repo.FindByUsername(ctx, username)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	sn := shortuuid.New()
	u = domain.User{
		SN:       sn,
		Username: username,
		Name:     username,
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	return u, nil
}
