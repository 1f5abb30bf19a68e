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

	"github.com/mindblowndbs/mindblown/internal/interactive/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/repository"
)

type InteractiveService interface {
	// LikeToggle 切换 uid 对目标资源的点赞状态，返回切换后的台账
	LikeToggle(ctx context.Context, biz string, id int64, uid int64) (domain.LikeStatus, error)
	IncrViewCnt(ctx context.Context, biz string, bizId, uid int64) error
	Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) (map[int64]domain.Interactive, error)
	Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error)
}

type interactiveService struct {
	repo repository.InteractiveRepository
}

func NewService(repo repository.InteractiveRepository) InteractiveService {
	return &interactiveService{
		repo: repo,
	}
}

func (i *interactiveService) LikeToggle(ctx context.Context, biz string, id int64, uid int64) (domain.LikeStatus, error) {
	return i.repo.LikeToggle(ctx, biz, id, uid)
}

func (i *interactiveService) IncrViewCnt(ctx context.Context, biz string, bizId, uid int64) error {
	return i.repo.IncrViewCnt(ctx, biz, bizId, uid)
}

func (i *interactiveService) Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	return i.repo.Liked(ctx, biz, id, uid)
}

func (i *interactiveService) Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error) {
	intr, err := i.repo.Get(ctx, biz, id)
	if err != nil {
		return domain.Interactive{}, err
	}
	if uid > 0 {
		liked, err := i.repo.Liked(ctx, biz, id, uid)
		if err != nil {
			return domain.Interactive{}, err
		}
		intr.Liked = liked
	}
	return intr, nil
}

func (i *interactiveService) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) (map[int64]domain.Interactive, error) {
	intrs, err := i.repo.GetByIds(ctx, biz, uid, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Interactive, len(intrs))
	for _, intr := range intrs {
		res[intr.BizId] = intr
	}
	return res, nil
}
