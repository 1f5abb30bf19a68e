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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"

	"github.com/mindblowndbs/mindblown/internal/interactive/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/repository/dao"
)

const (
	// StoryBiz 和 CommentBiz 是目前仅有的两种可点赞资源
	StoryBiz   = "story"
	CommentBiz = "comment"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type InteractiveRepository interface {
	// LikeToggle 切换点赞，返回切换之后的完整台账状态
	LikeToggle(ctx context.Context, biz string, id int64, uid int64) (domain.LikeStatus, error)
	IncrViewCnt(ctx context.Context, biz string, bizId, uid int64) error
	Get(ctx context.Context, biz string, id int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error)
	Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error)
}

type interactiveRepository struct {
	interactiveDao dao.InteractiveDAO
}

func NewCachedInteractiveRepository(interactiveDao dao.InteractiveDAO) InteractiveRepository {
	return &interactiveRepository{
		interactiveDao: interactiveDao,
	}
}

func (i *interactiveRepository) LikeToggle(ctx context.Context, biz string, id int64, uid int64) (domain.LikeStatus, error) {
	liked, err := i.interactiveDao.LikeToggle(ctx, biz, id, uid)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	likes, err := i.interactiveDao.ListLikes(ctx, biz, id)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	return domain.LikeStatus{
		Liked:   liked,
		LikeCnt: int64(len(likes)),
		Likes: slice.Map(likes, func(_ int, src dao.UserLikeBiz) domain.LikeRecord {
			return domain.LikeRecord{
				Uid:   src.Uid,
				Ctime: src.Ctime,
			}
		}),
	}, nil
}

func (i *interactiveRepository) IncrViewCnt(ctx context.Context, biz string, bizId, uid int64) error {
	return i.interactiveDao.IncrViewCnt(ctx, biz, bizId, uid)
}

func (i *interactiveRepository) Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	_, err := i.interactiveDao.GetLikeInfo(ctx, biz, id, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (i *interactiveRepository) Get(ctx context.Context, biz string, id int64) (domain.Interactive, error) {
	intr, err := i.interactiveDao.Get(ctx, biz, id)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			// 没有任何交互记录不算错误，一切都是 0
			return domain.Interactive{Biz: biz, BizId: id}, nil
		}
		return domain.Interactive{}, err
	}
	return i.toDomain(intr), nil
}

func (i *interactiveRepository) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error) {
	if len(ids) == 0 {
		return []domain.Interactive{}, nil
	}
	var (
		intrs    []dao.Interactive
		likedMap = map[int64]struct{}{}
		eg       errgroup.Group
	)
	eg.Go(func() error {
		var eerr error
		intrs, eerr = i.interactiveDao.GetByIds(ctx, biz, ids)
		return eerr
	})

	eg.Go(func() error {
		if uid <= 0 {
			return nil
		}
		likeds, eerr := i.interactiveDao.GetUserLikes(ctx, uid, biz, ids)
		if eerr != nil {
			return eerr
		}
		for _, liked := range likeds {
			likedMap[liked.BizId] = struct{}{}
		}
		return nil
	})

	err := eg.Wait()
	if err != nil {
		return nil, err
	}
	list := make([]domain.Interactive, 0, len(intrs))
	for _, intr := range intrs {
		domainIntr := i.toDomain(intr)
		_, liked := likedMap[domainIntr.BizId]
		domainIntr.Liked = liked
		list = append(list, domainIntr)
	}
	return list, nil
}

func (i *interactiveRepository) toDomain(ie dao.Interactive) domain.Interactive {
	return domain.Interactive{
		Biz:     ie.Biz,
		BizId:   ie.BizId,
		LikeCnt: ie.LikeCnt,
		ViewCnt: ie.ViewCnt,
	}
}
