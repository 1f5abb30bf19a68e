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

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
)

type CreateStoryReq struct {
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
}

type EditStoryReq struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

type StoryIDReq struct {
	ID int64 `json:"id"`
}

type ListStoryReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ProfileStoriesReq struct {
	Username string `json:"username"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type Story struct {
	ID        int64  `json:"id"`
	Uid       int64  `json:"uid"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
	Ctime     int64  `json:"ctime"`
	Utime     int64  `json:"utime"`

	CommentCnt      int64 `json:"commentCount"`
	TotalCommentCnt int64 `json:"totalCommentCount"`
	LikeCnt         int64 `json:"likeCount"`
	ViewCnt         int64 `json:"viewCount"`
	Liked           bool  `json:"liked"`

	Comments []Comment `json:"comments,omitempty"`
}

type StoryList struct {
	List []Story `json:"list"`
}

type Comment struct {
	ID       int64  `json:"id"`
	Uid      int64  `json:"uid"`
	Username string `json:"username"`
	Name     string `json:"name"`
	StoryID  int64  `json:"storyId"`
	ParentID int64  `json:"parentId,omitempty"`
	Content  string `json:"content"`
	Ctime    int64  `json:"ctime"`
	Utime    int64  `json:"utime"`

	Replies  []Comment `json:"replies"`
	ReplyCnt int64     `json:"replyCount"`
	LikeCnt  int64     `json:"likeCount"`
	Liked    bool      `json:"liked"`
}

type CreateCommentReq struct {
	StoryID int64  `json:"sid"`
	Content string `json:"content"`
}

type ReplyCommentReq struct {
	ParentID int64  `json:"pid"`
	Content  string `json:"content"`
}

type CommentIDReq struct {
	ID int64 `json:"id"`
}

type LikeStatus struct {
	Liked   bool         `json:"liked"`
	LikeCnt int64        `json:"likeCount"`
	Likes   []LikeRecord `json:"likes"`
}

type LikeRecord struct {
	Uid   int64  `json:"uid"`
	Name  string `json:"name"`
	Ctime int64  `json:"ctime"`
}

func newStory(s domain.Story) Story {
	return Story{
		ID:              s.ID,
		Uid:             s.Author.ID,
		Username:        s.Author.Username,
		Name:            s.Author.Name,
		Content:         s.Content,
		Anonymous:       s.Anonymous,
		Ctime:           s.Ctime,
		Utime:           s.Utime,
		CommentCnt:      s.CommentCnt,
		TotalCommentCnt: s.TotalCommentCnt,
		LikeCnt:         s.LikeCnt,
		ViewCnt:         s.ViewCnt,
		Liked:           s.Liked,
		Comments:        newComments(s.Comments),
	}
}

func newComments(cs []domain.Comment) []Comment {
	return slice.Map(cs, func(_ int, src domain.Comment) Comment {
		return newComment(src)
	})
}

func newComment(c domain.Comment) Comment {
	return Comment{
		ID:       c.ID,
		Uid:      c.Author.ID,
		Username: c.Author.Username,
		Name:     c.Author.Name,
		StoryID:  c.StoryID,
		ParentID: c.ParentID,
		Content:  c.Content,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
		Replies:  newComments(c.Replies),
		ReplyCnt: c.ReplyCnt,
		LikeCnt:  c.LikeCnt,
		Liked:    c.Liked,
	}
}

func newLikeStatus(status domain.LikeStatus) LikeStatus {
	return LikeStatus{
		Liked:   status.Liked,
		LikeCnt: status.LikeCnt,
		Likes: slice.Map(status.Likes, func(_ int, src domain.LikeRecord) LikeRecord {
			return LikeRecord{
				Uid:   src.Uid,
				Name:  src.Name,
				Ctime: src.Ctime,
			}
		}),
	}
}
