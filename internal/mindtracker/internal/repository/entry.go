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

	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type EntryRepository interface {
	Create(ctx context.Context, e domain.Entry) (int64, error)
	FindByUidAndDay(ctx context.Context, uid int64, day string) (domain.Entry, error)
	ExistsByUidAndDay(ctx context.Context, uid int64, day string) (bool, error)
	List(ctx context.Context, uid int64) ([]domain.Entry, error)
	UidsWithEntry(ctx context.Context, day string) ([]int64, error)
}

type entryRepository struct {
	dao dao.EntryDAO
}

func NewEntryRepository(d dao.EntryDAO) EntryRepository {
	return &entryRepository{dao: d}
}

func (r *entryRepository) Create(ctx context.Context, e domain.Entry) (int64, error) {
	return r.dao.Insert(ctx, dao.Entry{
		Uid:      e.Uid,
		Username: e.Username,
		Mood:     e.Mood,
		Progress: e.Progress,
		Day:      e.Day,
	})
}

func (r *entryRepository) FindByUidAndDay(ctx context.Context, uid int64, day string) (domain.Entry, error) {
	e, err := r.dao.FindByUidAndDay(ctx, uid, day)
	if err != nil {
		return domain.Entry{}, err
	}
	return domain.Entry{
		ID:       e.ID,
		Uid:      e.Uid,
		Username: e.Username,
		Mood:     e.Mood,
		Progress: e.Progress,
		Day:      e.Day,
		Ctime:    e.Ctime,
	}, nil
}

func (r *entryRepository) ExistsByUidAndDay(ctx context.Context, uid int64, day string) (bool, error) {
	return r.dao.ExistsByUidAndDay(ctx, uid, day)
}

func (r *entryRepository) List(ctx context.Context, uid int64) ([]domain.Entry, error) {
	es, err := r.dao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(_ int, src dao.Entry) domain.Entry {
		return domain.Entry{
			ID:       src.ID,
			Uid:      src.Uid,
			Username: src.Username,
			Mood:     src.Mood,
			Progress: src.Progress,
			Day:      src.Day,
			Ctime:    src.Ctime,
		}
	}), nil
}

func (r *entryRepository) UidsWithEntry(ctx context.Context, day string) ([]int64, error) {
	return r.dao.UidsWithEntry(ctx, day)
}
