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

// Story 发布时把作者的 username/name 冗余成快照，匿名发布时写入占位名
type Story struct {
	ID        int64  `gorm:"primaryKey,autoIncrement;comment:Story自增ID"`
	Uid       int64  `gorm:"not null;index:idx_uid;comment:作者"`
	Username  string `gorm:"type:varchar(128);not null;comment:作者用户名快照"`
	Name      string `gorm:"type:varchar(128);not null;comment:作者昵称快照"`
	Content   string `gorm:"type:text;not null"`
	Anonymous bool   `gorm:"not null;default:false;comment:是否匿名发布"`
	Ctime     int64
	Utime     int64
}

func (Story) TableName() string {
	return "stories"
}

type StoryDAO interface {
	Insert(ctx context.Context, s Story) (int64, error)
	// UpdateContent 只允许作者更新，返回是否真的更新了
	UpdateContent(ctx context.Context, id, uid int64, content string) (bool, error)
	FindByID(ctx context.Context, id int64) (Story, error)
	// List 按发布时间倒序分页
	List(ctx context.Context, offset, limit int) ([]Story, error)
	// ListByUid 个人主页用，匿名发布的不返回
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Story, error)
	Delete(ctx context.Context, id int64) error
}

type GORMStoryDAO struct {
	db *egorm.Component
}

func NewGORMStoryDAO(db *egorm.Component) *GORMStoryDAO {
	return &GORMStoryDAO{db: db}
}

func (g *GORMStoryDAO) Insert(ctx context.Context, s Story) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := g.db.WithContext(ctx).Create(&s).Error
	return s.ID, err
}

func (g *GORMStoryDAO) UpdateContent(ctx context.Context, id, uid int64, content string) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Story{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"content": content,
			"utime":   time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMStoryDAO) FindByID(ctx context.Context, id int64) (Story, error) {
	var s Story
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (g *GORMStoryDAO) List(ctx context.Context, offset, limit int) ([]Story, error) {
	var res []Story
	err := g.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMStoryDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Story, error) {
	var res []Story
	err := g.db.WithContext(ctx).
		Where("uid = ? AND anonymous = ?", uid, false).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMStoryDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Story{}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Story{}, &Comment{})
}
