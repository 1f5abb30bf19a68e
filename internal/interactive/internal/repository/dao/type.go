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

// Interactive 汇总表
type Interactive struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	BizId   int64  `gorm:"uniqueIndex:biz_type_id"`
	Biz     string `gorm:"type:varchar(128);uniqueIndex:biz_type_id"`
	ViewCnt int64
	LikeCnt int64
	Utime   int64
	Ctime   int64
}

// UserLikeBiz 点赞明细表，也就是点赞台账。
// (uid, biz, biz_id) 上的唯一索引保证了一个用户对一个资源至多一条记录，
// 并发重复点赞会在存储层失败，而不是写出两条。
type UserLikeBiz struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Uid   int64  `gorm:"uniqueIndex:uid_biz_type_id"`
	BizId int64  `gorm:"uniqueIndex:uid_biz_type_id;index:biz_biz_id"`
	Biz   string `gorm:"type:varchar(128);uniqueIndex:uid_biz_type_id;index:biz_biz_id"`
	Utime int64
	Ctime int64
}

// UserViewBiz 浏览去重表，一个用户对一个资源只计一次浏览
type UserViewBiz struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Uid   int64  `gorm:"uniqueIndex:uid_biz_type_id"`
	BizId int64  `gorm:"uniqueIndex:uid_biz_type_id"`
	Biz   string `gorm:"type:varchar(128);uniqueIndex:uid_biz_type_id"`
	Utime int64
	Ctime int64
}
