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

type Entry struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	Uid      int64  `gorm:"not null;index:idx_uid_day,priority:1"`
	Username string `gorm:"type:varchar(128);not null"`
	Mood     string `gorm:"type:varchar(64)"`
	Progress string `gorm:"type:text;not null"`
	// 自然日 2006-01-02，按天查询都走这个索引
	Day   string `gorm:"type:varchar(10);not null;index:idx_uid_day,priority:2"`
	Ctime int64
	Utime int64
}

func (Entry) TableName() string {
	return "mind_tracker_entries"
}

type EntryDAO interface {
	Insert(ctx context.Context, e Entry) (int64, error)
	// FindByUidAndDay 同一天多条时取最新的
	FindByUidAndDay(ctx context.Context, uid int64, day string) (Entry, error)
	ExistsByUidAndDay(ctx context.Context, uid int64, day string) (bool, error)
	// ListByUid 打卡历史，新的在前
	ListByUid(ctx context.Context, uid int64) ([]Entry, error)
	// UidsWithEntry 当天交过打卡的用户集合
	UidsWithEntry(ctx context.Context, day string) ([]int64, error)
}

type GORMEntryDAO struct {
	db *egorm.Component
}

func NewGORMEntryDAO(db *egorm.Component) *GORMEntryDAO {
	return &GORMEntryDAO{db: db}
}

func (g *GORMEntryDAO) Insert(ctx context.Context, e Entry) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	err := g.db.WithContext(ctx).Create(&e).Error
	return e.ID, err
}

func (g *GORMEntryDAO) FindByUidAndDay(ctx context.Context, uid int64, day string) (Entry, error) {
	var e Entry
	err := g.db.WithContext(ctx).
		Where("uid = ? AND day = ?", uid, day).
		Order("id DESC").
		First(&e).Error
	return e, err
}

func (g *GORMEntryDAO) ExistsByUidAndDay(ctx context.Context, uid int64, day string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Entry{}).
		Where("uid = ? AND day = ?", uid, day).
		Count(&count).Error
	return count > 0, err
}

func (g *GORMEntryDAO) ListByUid(ctx context.Context, uid int64) ([]Entry, error) {
	var es []Entry
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&es).Error
	return es, err
}

func (g *GORMEntryDAO) UidsWithEntry(ctx context.Context, day string) ([]int64, error) {
	var uids []int64
	err := g.db.WithContext(ctx).Model(&Entry{}).
		Where("day = ?", day).
		Distinct().
		Pluck("uid", &uids).Error
	return uids, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Entry{})
}
