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

package web

import "github.com/mindblowndbs/mindblown/internal/notification/internal/domain"

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Notification struct {
	ID           int64  `json:"id"`
	FromUid      int64  `json:"fromUid"`
	FromUsername string `json:"fromUsername"`
	Type         string `json:"type"`
	Message      string `json:"message"`
	StoryID      int64  `json:"storyId,omitempty"`
	CommentID    int64  `json:"commentId,omitempty"`
	Read         bool   `json:"read"`
	Ctime        int64  `json:"ctime"`
}

type ListResp struct {
	List        []Notification `json:"list"`
	UnreadCount int64          `json:"unreadCount"`
}

type MarkReadReq struct {
	ID int64 `json:"id"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:           n.ID,
		FromUid:      n.FromUid,
		FromUsername: n.FromUsername,
		Type:         n.Type,
		Message:      n.Message,
		StoryID:      n.StoryID,
		CommentID:    n.CommentID,
		Read:         n.Read,
		Ctime:        n.Ctime,
	}
}
