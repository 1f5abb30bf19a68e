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

	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/repository/dao"
)

type ChatHistoryRepository interface {
	Save(ctx context.Context, c domain.ChatRecord) (int64, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.ChatRecord, error)
}

type chatHistoryRepository struct {
	dao dao.ChatHistoryDAO
}

func NewChatHistoryRepository(d dao.ChatHistoryDAO) ChatHistoryRepository {
	return &chatHistoryRepository{dao: d}
}

func (r *chatHistoryRepository) Save(ctx context.Context, c domain.ChatRecord) (int64, error) {
	return r.dao.Insert(ctx, dao.ChatHistory{
		Uid:      c.Uid,
		Message:  c.Message,
		Response: c.Response,
	})
}

func (r *chatHistoryRepository) ListByUid(ctx context.Context, uid int64) ([]domain.ChatRecord, error) {
	cs, err := r.dao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(_ int, src dao.ChatHistory) domain.ChatRecord {
		return domain.ChatRecord{
			ID:       src.ID,
			Uid:      src.Uid,
			Message:  src.Message,
			Response: src.Response,
			Ctime:    src.Ctime,
		}
	}), nil
}
