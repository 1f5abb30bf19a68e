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

type Comment struct {
	ID     int64
	Author Author
	// StoryID 冗余在每一条评论上，哪怕是深层回复
	StoryID int64
	// ParentID 为 0 表示直接评论
	ParentID int64
	Content  string
	Ctime    int64
	Utime    int64

	// Replies 是直接子回复，构成递归的评论树
	Replies []Comment
	// ReplyCnt 是所有层级的后裔回复数
	ReplyCnt int64
	LikeCnt  int64
	Liked    bool
}
