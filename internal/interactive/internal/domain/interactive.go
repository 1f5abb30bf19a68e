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

type Interactive struct {
	Biz     string
	BizId   int64
	ViewCnt int64
	LikeCnt int64
	Liked   bool
}

// LikeRecord 点赞明细，一个用户对一个资源至多一条
type LikeRecord struct {
	Uid int64
	// 点赞时间
	Ctime int64
}

// LikeStatus 切换点赞之后的最新状态
type LikeStatus struct {
	// 这一次操作之后，当前用户是否点赞
	Liked   bool
	LikeCnt int64
	Likes   []LikeRecord
}
