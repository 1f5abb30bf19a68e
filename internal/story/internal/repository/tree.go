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
	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
)

// buildCommentTree 把逐层取出的评论按 ParentID 组装成树。
// levels[0] 是根这一层，levels[i+1] 全部是 levels[i] 的直接子回复。
// 自底向上组装，挂到父节点时子节点的子树已经完整，
// 同时算好每个节点的 ReplyCnt，含所有层级的后裔。
// 每层内部保持传入顺序，即 DAO 返回的评论时间正序。
func buildCommentTree(levels [][]domain.Comment) []domain.Comment {
	if len(levels) == 0 {
		return []domain.Comment{}
	}
	for i := len(levels) - 2; i >= 0; i-- {
		children := make(map[int64][]domain.Comment, len(levels[i+1]))
		for _, c := range levels[i+1] {
			children[c.ParentID] = append(children[c.ParentID], c)
		}
		for j := range levels[i] {
			node := &levels[i][j]
			node.Replies = children[node.ID]
			node.ReplyCnt = 0
			for _, child := range node.Replies {
				node.ReplyCnt += 1 + child.ReplyCnt
			}
		}
	}
	return levels[0]
}

// countTreeNodes 统计各层节点总数
func countTreeNodes(levels [][]domain.Comment) int64 {
	var total int64
	for _, level := range levels {
		total += int64(len(level))
	}
	return total
}
