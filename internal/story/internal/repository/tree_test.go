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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
)

func TestBuildCommentTree(t *testing.T) {
	t.Parallel()
	c := func(id, pid int64) domain.Comment {
		return domain.Comment{ID: id, ParentID: pid}
	}
	testCases := []struct {
		name   string
		levels [][]domain.Comment
		want   []domain.Comment
	}{
		{
			name:   "没有评论",
			levels: nil,
			want:   []domain.Comment{},
		},
		{
			name: "只有直接评论",
			levels: [][]domain.Comment{
				{c(1, 0), c(2, 0)},
			},
			want: []domain.Comment{c(1, 0), c(2, 0)},
		},
		{
			name: "一条评论三条后裔",
			levels: [][]domain.Comment{
				{c(1, 0)},
				{c(2, 1), c(3, 1)},
				{c(4, 2)},
			},
			want: []domain.Comment{
				{
					ID:       1,
					ReplyCnt: 3,
					Replies: []domain.Comment{
						{
							ID:       2,
							ParentID: 1,
							ReplyCnt: 1,
							Replies: []domain.Comment{
								c(4, 2),
							},
						},
						c(3, 1),
					},
				},
			},
		},
		{
			name: "多棵子树互不干扰",
			levels: [][]domain.Comment{
				{c(1, 0), c(2, 0)},
				{c(3, 1), c(4, 2), c(5, 1)},
				{c(6, 4)},
			},
			want: []domain.Comment{
				{
					ID:       1,
					ReplyCnt: 2,
					Replies:  []domain.Comment{c(3, 1), c(5, 1)},
				},
				{
					ID:       2,
					ReplyCnt: 2,
					Replies: []domain.Comment{
						{
							ID:       4,
							ParentID: 2,
							ReplyCnt: 1,
							Replies:  []domain.Comment{c(6, 4)},
						},
					},
				},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, buildCommentTree(tc.levels))
		})
	}
}

func TestCountTreeNodes(t *testing.T) {
	t.Parallel()
	levels := [][]domain.Comment{
		{{ID: 1}},
		{{ID: 2}, {ID: 3}},
		{{ID: 4}},
	}
	assert.Equal(t, int64(4), countTreeNodes(levels))
	assert.Equal(t, int64(0), countTreeNodes(nil))
}
