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
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Notification struct {
	ID int64 `gorm:"primaryKey,autoIncrement"`
	// 收件人，查询都走这个索引
	Uid          int64  `gorm:"not null;index:idx_notification_uid;comment:收件人"`
	FromUid      int64  `gorm:"not null;comment:触发者"`
	FromUsername string `gorm:"type:varchar(128);not null"`
	Type         string `gorm:"type:varchar(32);not null"`
	Message      string `gorm:"type:varchar(512);not null"`
	StoryID      int64  `gorm:"not null;default:0"`
	CommentID    int64  `gorm:"not null;default:0"`
	ReadFlag     bool   `gorm:"not null;default:false"`
	Ctime        int64
	Utime        int64
}

func (Notification) TableName() string {
	return "notifications"
}

type NotificationDAO interface {
	Insert(ctx context.Context, n Notification) (int64, error)
	// ListByUid 按时间倒序分页
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	FindByID(ctx context.Context, id int64) (Notification, error)
	// MarkRead 返回是否真的更新了
	MarkRead(ctx context.Context, id, uid int64) (bool, error)
	MarkAllRead(ctx context.Context, uid int64) error
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) *GORMNotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (g *GORMNotificationDAO) Insert(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime, n.Utime = now, now
	err := g.db.WithContext(ctx).Create(&n).Error
	return n.ID, err
}

func (g *GORMNotificationDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMNotificationDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND read_flag = ?", uid, false).
		Count(&count).Error
	return count, err
}

func (g *GORMNotificationDAO) FindByID(ctx context.Context, id int64) (Notification, error) {
	var n Notification
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	return n, err
}

func (g *GORMNotificationDAO) MarkRead(ctx context.Context, id, uid int64) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"read_flag": true,
			"utime":     time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMNotificationDAO) MarkAllRead(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND read_flag = ?", uid, false).
		Updates(map[string]any{
			"read_flag": true,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Notification{})
}
