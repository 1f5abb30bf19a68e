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

package domain

const (
	// AnonymousUsername 匿名发布时展示的用户名
	AnonymousUsername = "Anonim"
	// AnonymousName 匿名发布时展示的昵称
	AnonymousName = "Pengguna"
)

type Author struct {
	ID int64
	// 发布时的快照，匿名时固定为 Anonim/Pengguna
	Username string
	Name     string
	Avatar   string
}

type Story struct {
	ID        int64
	Author    Author
	Content   string
	Anonymous bool
	Ctime     int64
	Utime     int64

	// CommentCnt 是直接评论数，TotalCommentCnt 包含所有层级的回复
	CommentCnt      int64
	TotalCommentCnt int64
	LikeCnt         int64
	ViewCnt         int64
	Liked           bool

	// Detail 场景下填充整棵评论树，List 场景下只有直接评论
	Comments []Comment
}

// LikeRecord 点赞明细，昵称是查询时从用户模块现取的
type LikeRecord struct {
	Uid   int64
	Name  string
	Ctime int64
}

// LikeStatus 切换点赞之后的最新状态
type LikeStatus struct {
	Liked   bool
	LikeCnt int64
	Likes   []LikeRecord
}
