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

	"github.com/ecodeclub/ekit/slice"

	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/story/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type StoryRepository interface {
	Create(ctx context.Context, s domain.Story) (int64, error)
	UpdateContent(ctx context.Context, id, uid int64, content string) (bool, error)
	FindByID(ctx context.Context, id int64) (domain.Story, error)
	List(ctx context.Context, offset, limit int) ([]domain.Story, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Story, error)
	Delete(ctx context.Context, id int64) error
}

type storyRepository struct {
	dao dao.StoryDAO
}

func NewStoryRepository(d dao.StoryDAO) StoryRepository {
	return &storyRepository{dao: d}
}

func (r *storyRepository) Create(ctx context.Context, s domain.Story) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(s))
}

func (r *storyRepository) UpdateContent(ctx context.Context, id, uid int64, content string) (bool, error) {
	return r.dao.UpdateContent(ctx, id, uid, content)
}

func (r *storyRepository) FindByID(ctx context.Context, id int64) (domain.Story, error) {
	s, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Story{}, err
	}
	return r.toDomain(s), nil
}

func (r *storyRepository) List(ctx context.Context, offset, limit int) ([]domain.Story, error) {
	stories, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(stories, func(_ int, src dao.Story) domain.Story {
		return r.toDomain(src)
	}), nil
}

func (r *storyRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Story, error) {
	stories, err := r.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(stories, func(_ int, src dao.Story) domain.Story {
		return r.toDomain(src)
	}), nil
}

func (r *storyRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *storyRepository) toDomain(s dao.Story) domain.Story {
	return domain.Story{
		ID: s.ID,
		Author: domain.Author{
			ID:       s.Uid,
			Username: s.Username,
			Name:     s.Name,
		},
		Content:   s.Content,
		Anonymous: s.Anonymous,
		Ctime:     s.Ctime,
		Utime:     s.Utime,
	}
}

func (r *storyRepository) toEntity(s domain.Story) dao.Story {
	return dao.Story{
		ID:        s.ID,
		Uid:       s.Author.ID,
		Username:  s.Author.Username,
		Name:      s.Author.Name,
		Content:   s.Content,
		Anonymous: s.Anonymous,
	}
}
