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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type ChatHistory struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	Uid      int64  `gorm:"not null;index:idx_chat_uid"`
	Message  string `gorm:"type:text;not null"`
	Response string `gorm:"type:text;not null"`
	Ctime    int64
	Utime    int64
}

func (ChatHistory) TableName() string {
	return "chat_histories"
}

type ChatHistoryDAO interface {
	Insert(ctx context.Context, c ChatHistory) (int64, error)
	// ListByUid 最新的在前面
	ListByUid(ctx context.Context, uid int64) ([]ChatHistory, error)
}

type GORMChatHistoryDAO struct {
	db *egorm.Component
}

func NewGORMChatHistoryDAO(db *egorm.Component) *GORMChatHistoryDAO {
	return &GORMChatHistoryDAO{db: db}
}

func (g *GORMChatHistoryDAO) Insert(ctx context.Context, c ChatHistory) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.ID, err
}

func (g *GORMChatHistoryDAO) ListByUid(ctx context.Context, uid int64) ([]ChatHistory, error) {
	var res []ChatHistory
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&ChatHistory{})
}
