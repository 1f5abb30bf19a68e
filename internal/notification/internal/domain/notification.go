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
	TypeComment  = "comment"
	TypeReply    = "reply"
	TypeReminder = "reminder"
)

type Notification struct {
	ID int64
	// Uid 是收件人
	Uid          int64
	FromUid      int64
	FromUsername string
	// Type 取值 comment、reply、reminder
	Type    string
	Message string
	// 关联的资源，没有就是 0
	StoryID   int64
	CommentID int64
	Read      bool
	Ctime     int64
}
