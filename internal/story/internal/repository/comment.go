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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"

	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/story/internal/repository/dao"
)

type CommentRepository interface {
	Create(ctx context.Context, c domain.Comment) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Comment, error)
	// FindTree 取出 Story 的整棵评论树，返回树和全树节点数
	FindTree(ctx context.Context, storyID int64) ([]domain.Comment, int64, error)
	// FindSubtree 取出以某条评论为根的子树
	FindSubtree(ctx context.Context, id int64) (domain.Comment, error)
	// CountTopLevel 每个 Story 的直接评论数
	CountTopLevel(ctx context.Context, storyIDs []int64) (map[int64]int64, error)
	// CountAll 每个 Story 全树的评论数
	CountAll(ctx context.Context, storyIDs []int64) (map[int64]int64, error)
	CountDescendants(ctx context.Context, id int64) (int64, error)
	DeleteSubtree(ctx context.Context, id int64) error
	DeleteByStoryID(ctx context.Context, storyID int64) error
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(d dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: d}
}

func (r *commentRepository) Create(ctx context.Context, c domain.Comment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(c))
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) FindTree(ctx context.Context, storyID int64) ([]domain.Comment, int64, error) {
	top, err := r.dao.FindTopLevel(ctx, storyID)
	if err != nil {
		return nil, 0, err
	}
	levels, err := r.fetchLevels(ctx, top)
	if err != nil {
		return nil, 0, err
	}
	return buildCommentTree(levels), countTreeNodes(levels), nil
}

func (r *commentRepository) FindSubtree(ctx context.Context, id int64) (domain.Comment, error) {
	root, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	levels, err := r.fetchLevels(ctx, []dao.Comment{root})
	if err != nil {
		return domain.Comment{}, err
	}
	return buildCommentTree(levels)[0], nil
}

// fetchLevels 从一批根出发逐层下探，直到没有更深的回复。
// 指向已删除父节点的孤儿行不会出现在任何一层里
func (r *commentRepository) fetchLevels(ctx context.Context, roots []dao.Comment) ([][]domain.Comment, error) {
	if len(roots) == 0 {
		return [][]domain.Comment{}, nil
	}
	levels := [][]domain.Comment{r.toDomains(roots)}
	parentIDs := slice.Map(roots, func(_ int, src dao.Comment) int64 {
		return src.ID
	})
	for {
		children, err := r.dao.FindByParentIDs(ctx, parentIDs)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return levels, nil
		}
		levels = append(levels, r.toDomains(children))
		parentIDs = slice.Map(children, func(_ int, src dao.Comment) int64 {
			return src.ID
		})
	}
}

func (r *commentRepository) CountTopLevel(ctx context.Context, storyIDs []int64) (map[int64]int64, error) {
	counts, err := r.dao.CountTopLevel(ctx, storyIDs)
	if err != nil {
		return nil, err
	}
	return r.toCountMap(counts), nil
}

func (r *commentRepository) CountAll(ctx context.Context, storyIDs []int64) (map[int64]int64, error) {
	counts, err := r.dao.CountByStoryIDs(ctx, storyIDs)
	if err != nil {
		return nil, err
	}
	return r.toCountMap(counts), nil
}

func (r *commentRepository) toCountMap(counts []dao.StoryCommentCount) map[int64]int64 {
	res := make(map[int64]int64, len(counts))
	for _, c := range counts {
		res[c.StoryID] = c.Cnt
	}
	return res
}

func (r *commentRepository) CountDescendants(ctx context.Context, id int64) (int64, error) {
	return r.dao.CountDescendants(ctx, id)
}

func (r *commentRepository) DeleteSubtree(ctx context.Context, id int64) error {
	return r.dao.DeleteSubtree(ctx, id)
}

func (r *commentRepository) DeleteByStoryID(ctx context.Context, storyID int64) error {
	return r.dao.DeleteByStoryID(ctx, storyID)
}

func (r *commentRepository) toDomains(cs []dao.Comment) []domain.Comment {
	return slice.Map(cs, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	})
}

func (r *commentRepository) toDomain(c dao.Comment) domain.Comment {
	var parentID int64
	if c.ParentID.Valid {
		parentID = c.ParentID.V
	}
	return domain.Comment{
		ID: c.ID,
		Author: domain.Author{
			ID:       c.Uid,
			Username: c.Username,
			Name:     c.Name,
		},
		StoryID:  c.StoryID,
		ParentID: parentID,
		Content:  c.Content,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}

func (r *commentRepository) toEntity(c domain.Comment) dao.Comment {
	return dao.Comment{
		ID:       c.ID,
		Uid:      c.Author.ID,
		Username: c.Author.Username,
		Name:     c.Author.Name,
		StoryID:  c.StoryID,
		ParentID: sql.Null[int64]{V: c.ParentID, Valid: c.ParentID != 0},
		Content:  c.Content,
	}
}
