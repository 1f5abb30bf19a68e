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
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
)

// Comment 同时承载直接评论和任意深度的回复。
// StoryID 冗余在每一行上，整棵树的统计和级联删除都不用递归到根。
type Comment struct {
	ID       int64  `gorm:"primaryKey,autoIncrement;comment:评论自增ID"`
	Uid      int64  `gorm:"not null;index:idx_comment_uid;comment:评论者"`
	Username string `gorm:"type:varchar(128);not null;comment:评论者用户名快照"`
	Name     string `gorm:"type:varchar(128);not null;comment:评论者昵称快照"`

	StoryID int64 `gorm:"not null;index:idx_story_id;comment:所属Story，深层回复也冗余"`
	// NULL 表示对 Story 的直接评论
	ParentID sql.Null[int64] `gorm:"type:bigint;index:idx_parent_id;comment:父评论ID"`

	Content string `gorm:"type:text;not null"`
	Ctime   int64
	Utime   int64
}

func (Comment) TableName() string {
	return "comments"
}

// StoryCommentCount GROUP BY story_id 的统计结果
type StoryCommentCount struct {
	StoryID int64
	Cnt     int64
}

type CommentDAO interface {
	Insert(ctx context.Context, c Comment) (int64, error)
	FindByID(ctx context.Context, id int64) (Comment, error)
	// FindTopLevel 查找 Story 的直接评论，按评论时间正序
	FindTopLevel(ctx context.Context, storyID int64) ([]Comment, error)
	// FindByParentIDs 查找一批评论的直接子回复，按评论时间正序。
	// 反复调用它就能逐层取出整棵（或整片）评论树
	FindByParentIDs(ctx context.Context, parentIDs []int64) ([]Comment, error)
	// CountTopLevel 统计每个 Story 的直接评论数
	CountTopLevel(ctx context.Context, storyIDs []int64) ([]StoryCommentCount, error)
	// CountByStoryIDs 统计每个 Story 全树的评论数，含所有层级的回复
	CountByStoryIDs(ctx context.Context, storyIDs []int64) ([]StoryCommentCount, error)
	// CountDescendants 统计一条评论所有层级的后裔回复数
	CountDescendants(ctx context.Context, id int64) (int64, error)
	// DeleteSubtree 删除评论及其全部后裔。逐层删除且不开事务，
	// 中途失败只会留下更深层的孤儿行，重放一次即可删干净
	DeleteSubtree(ctx context.Context, id int64) error
	// DeleteByStoryID 删除 Story 下的全部评论
	DeleteByStoryID(ctx context.Context, storyID int64) error
}

type GORMCommentDAO struct {
	db *egorm.Component
}

func NewGORMCommentDAO(db *egorm.Component) *GORMCommentDAO {
	return &GORMCommentDAO{db: db}
}

func (g *GORMCommentDAO) Insert(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.ID, err
}

func (g *GORMCommentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMCommentDAO) FindTopLevel(ctx context.Context, storyID int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("story_id = ? AND parent_id IS NULL", storyID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMCommentDAO) FindByParentIDs(ctx context.Context, parentIDs []int64) ([]Comment, error) {
	if len(parentIDs) == 0 {
		return []Comment{}, nil
	}
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMCommentDAO) CountTopLevel(ctx context.Context, storyIDs []int64) ([]StoryCommentCount, error) {
	if len(storyIDs) == 0 {
		return []StoryCommentCount{}, nil
	}
	var res []StoryCommentCount
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Select("story_id AS story_id, COUNT(*) AS cnt").
		Where("story_id IN ? AND parent_id IS NULL", storyIDs).
		Group("story_id").
		Find(&res).Error
	return res, err
}

func (g *GORMCommentDAO) CountByStoryIDs(ctx context.Context, storyIDs []int64) ([]StoryCommentCount, error) {
	if len(storyIDs) == 0 {
		return []StoryCommentCount{}, nil
	}
	var res []StoryCommentCount
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Select("story_id AS story_id, COUNT(*) AS cnt").
		Where("story_id IN ?", storyIDs).
		Group("story_id").
		Find(&res).Error
	return res, err
}

func (g *GORMCommentDAO) CountDescendants(ctx context.Context, id int64) (int64, error) {
	var total int64
	parentIDs := []int64{id}
	for len(parentIDs) > 0 {
		var childIDs []int64
		err := g.db.WithContext(ctx).Model(&Comment{}).
			Where("parent_id IN ?", parentIDs).
			Pluck("id", &childIDs).Error
		if err != nil {
			return 0, err
		}
		total += int64(len(childIDs))
		parentIDs = childIDs
	}
	return total, nil
}

func (g *GORMCommentDAO) DeleteSubtree(ctx context.Context, id int64) error {
	// 先收集整棵子树，再从最深层往上删
	levels := [][]int64{{id}}
	for {
		var childIDs []int64
		err := g.db.WithContext(ctx).Model(&Comment{}).
			Where("parent_id IN ?", levels[len(levels)-1]).
			Pluck("id", &childIDs).Error
		if err != nil {
			return err
		}
		if len(childIDs) == 0 {
			break
		}
		levels = append(levels, childIDs)
	}
	for i := len(levels) - 1; i >= 0; i-- {
		err := g.db.WithContext(ctx).
			Where("id IN ?", levels[i]).
			Delete(&Comment{}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *GORMCommentDAO) DeleteByStoryID(ctx context.Context, storyID int64) error {
	return g.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Delete(&Comment{}).Error
}
