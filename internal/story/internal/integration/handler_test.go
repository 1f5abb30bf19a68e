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

//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	notidao "github.com/mindblowndbs/mindblown/internal/notification/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/story"
	"github.com/mindblowndbs/mindblown/internal/story/internal/integration/startup"
	"github.com/mindblowndbs/mindblown/internal/story/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/story/internal/web"
	"github.com/mindblowndbs/mindblown/internal/test"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
	userdao "github.com/mindblowndbs/mindblown/internal/user/internal/repository/dao"
)

const (
	uid      = int64(2061)
	otherUid = int64(2062)
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	csvc   story.CommentService
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.csvc = module.CommentSvc
	s.db = testioc.InitDB()
	// 两个测试用户
	now := time.Now().UnixMilli()
	err = s.db.Create(&userdao.User{
		Id: uid, SN: "sn-alice", Username: "alice", Name: "Alice",
		Ctime: now, Utime: now,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create(&userdao.User{
		Id: otherUid, SN: "sn-bob", Username: "bob", Name: "Bob",
		Ctime: now, Utime: now,
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{
		"stories", "comments", "notifications",
		"interactives", "user_like_bizs", "user_view_bizs", "users",
	} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"stories", "comments", "notifications",
		"interactives", "user_like_bizs", "user_view_bizs",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestCreateStory() {
	testCases := []struct {
		name     string
		req      web.CreateStoryReq
		wantCode int
		after    func(t *testing.T, res test.Result[web.Story])
	}{
		{
			name:     "实名发布",
			req:      web.CreateStoryReq{Content: "hari ini cukup berat"},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Story]) {
				assert.True(t, res.Data.ID > 0)
				assert.Equal(t, "alice", res.Data.Username)
				assert.Equal(t, "Alice", res.Data.Name)
				assert.False(t, res.Data.Anonymous)
			},
		},
		{
			name:     "匿名发布",
			req:      web.CreateStoryReq{Content: "rahasia", Anonymous: true},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Story]) {
				// 匿名发布写入占位快照，真实 uid 照常落库
				assert.Equal(t, "Anonim", res.Data.Username)
				assert.Equal(t, "Pengguna", res.Data.Name)
				assert.True(t, res.Data.Anonymous)
				var entity dao.Story
				err := s.db.Where("id = ?", res.Data.ID).First(&entity).Error
				require.NoError(t, err)
				assert.Equal(t, uid, entity.Uid)
			},
		},
		{
			name:     "内容为空",
			req:      web.CreateStoryReq{Content: ""},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Story]) {
				assert.Equal(t, 503005, res.Code)
			},
		},
		{
			name:     "内容全是空白",
			req:      web.CreateStoryReq{Content: " \t\n "},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Story]) {
				assert.Equal(t, 503005, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := s.post("/stories/create", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

// TestCommentTree 一条直接评论下挂多层回复，
// 详情页应该给出整棵树、直接评论数和全树评论数
func (s *HandlerTestSuite) TestCommentTree() {
	sid := s.createStory(otherUid, "bob", "Bob", "cerita milik bob")

	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C1"})
	r1 := s.mustReply(web.ReplyCommentReq{ParentID: c1.ID, Content: "R1"})
	s.mustReply(web.ReplyCommentReq{ParentID: c1.ID, Content: "R2"})
	s.mustReply(web.ReplyCommentReq{ParentID: r1.ID, Content: "R3"})

	recorder := s.post("/stories/detail", web.StoryIDReq{ID: sid})
	require.Equal(s.T(), 200, recorder.Code)
	story := recorder.MustScan().Data

	assert.Equal(s.T(), int64(1), story.CommentCnt)
	assert.Equal(s.T(), int64(4), story.TotalCommentCnt)
	require.Len(s.T(), story.Comments, 1)
	top := story.Comments[0]
	assert.Equal(s.T(), c1.ID, top.ID)
	assert.Equal(s.T(), int64(3), top.ReplyCnt)
	require.Len(s.T(), top.Replies, 2)
	assert.Equal(s.T(), r1.ID, top.Replies[0].ID)
	assert.Equal(s.T(), int64(1), top.Replies[0].ReplyCnt)
	require.Len(s.T(), top.Replies[0].Replies, 1)
	assert.Equal(s.T(), "R3", top.Replies[0].Replies[0].Content)

	// 后裔计数和树上挂的节点数一致
	cnt, err := s.csvc.CountReplies(context.Background(), c1.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), top.ReplyCnt, cnt)
	cnt, err = s.csvc.CountReplies(context.Background(), r1.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)

	// bob 只收到 C1 的评论通知。
	// 后面的回复都是 alice 回自己的评论，自己不通知自己
	var notis []notidao.Notification
	err = s.db.Where("uid = ?", otherUid).Find(&notis).Error
	require.NoError(s.T(), err)
	require.Len(s.T(), notis, 1)
	assert.Equal(s.T(), "comment", notis[0].Type)
	assert.Equal(s.T(), uid, notis[0].FromUid)
	assert.Equal(s.T(), "alice berkomentar di story-mu.", notis[0].Message)
	assert.Equal(s.T(), sid, notis[0].StoryID)
	assert.Equal(s.T(), c1.ID, notis[0].CommentID)
}

func (s *HandlerTestSuite) TestReplyNotifiesParentAuthor() {
	sid := s.createStory(uid, "alice", "Alice", "cerita alice")
	// bob 的评论直接落库
	cid := s.insertComment(otherUid, "bob", "Bob", sid, 0, "komentar bob")

	reply := s.mustReply(web.ReplyCommentReq{ParentID: cid, Content: "balasan"})

	// 回复通知给父评论作者，而不是 story 作者
	var notis []notidao.Notification
	err := s.db.Where("uid = ?", otherUid).Find(&notis).Error
	require.NoError(s.T(), err)
	require.Len(s.T(), notis, 1)
	assert.Equal(s.T(), "reply", notis[0].Type)
	assert.Equal(s.T(), "alice membalas komentarmu.", notis[0].Message)
	assert.Equal(s.T(), reply.ID, notis[0].CommentID)

	var cnt int64
	err = s.db.Model(&notidao.Notification{}).Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), cnt)
}

func (s *HandlerTestSuite) TestEdit() {
	ownSid := s.createStory(uid, "alice", "Alice", "sebelum diedit")
	otherSid := s.createStory(otherUid, "bob", "Bob", "punya bob")
	testCases := []struct {
		name     string
		req      web.EditStoryReq
		wantCode int
		after    func(t *testing.T, res test.Result[any])
	}{
		{
			name:     "编辑自己的",
			req:      web.EditStoryReq{ID: ownSid, Content: "sudah diedit"},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[any]) {
				assert.Equal(t, 0, res.Code)
				var entity dao.Story
				err := s.db.Where("id = ?", ownSid).First(&entity).Error
				require.NoError(t, err)
				assert.Equal(t, "sudah diedit", entity.Content)
			},
		},
		{
			name:     "编辑别人的",
			req:      web.EditStoryReq{ID: otherSid, Content: "jahat"},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[any]) {
				assert.Equal(t, 503004, res.Code)
			},
		},
		{
			name:     "不存在",
			req:      web.EditStoryReq{ID: 99999, Content: "apa"},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[any]) {
				assert.Equal(t, 503002, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/stories/edit", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

// TestDeleteStory 删 story 连带整棵评论树一次删干净
func (s *HandlerTestSuite) TestDeleteStory() {
	sid := s.createStory(uid, "alice", "Alice", "akan dihapus")
	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C1"})
	r1 := s.mustReply(web.ReplyCommentReq{ParentID: c1.ID, Content: "R1"})
	s.mustReply(web.ReplyCommentReq{ParentID: r1.ID, Content: "R2"})
	// 别的 story 的评论不受影响
	otherSid := s.createStory(otherUid, "bob", "Bob", "tetap ada")
	s.insertComment(otherUid, "bob", "Bob", otherSid, 0, "komentar lain")

	recorder := s.post("/stories/delete", web.StoryIDReq{ID: sid})
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), 0, recorder.MustScan().Code)

	var cnt int64
	err := s.db.Model(&dao.Story{}).Where("id = ?", sid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), cnt)
	err = s.db.Model(&dao.Comment{}).Where("story_id = ?", sid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), cnt)
	err = s.db.Model(&dao.Comment{}).Where("story_id = ?", otherSid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)

	// 别人删不掉
	recorder = s.post("/stories/delete", web.StoryIDReq{ID: otherSid})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 503004, recorder.MustScan().Code)
}

// TestDeleteComment 删评论带走全部后裔，同级评论不受影响
func (s *HandlerTestSuite) TestDeleteComment() {
	sid := s.createStory(otherUid, "bob", "Bob", "cerita")
	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C1"})
	r1 := s.mustReply(web.ReplyCommentReq{ParentID: c1.ID, Content: "R1"})
	s.mustReply(web.ReplyCommentReq{ParentID: r1.ID, Content: "R2"})
	c2 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C2"})

	// 非作者的评论删不掉
	bobCid := s.insertComment(otherUid, "bob", "Bob", sid, 0, "punya bob")
	recorder := s.post("/comments/delete", web.CommentIDReq{ID: bobCid})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 503004, recorder.MustScan().Code)

	recorder = s.post("/comments/delete", web.CommentIDReq{ID: c1.ID})
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), 0, recorder.MustScan().Code)

	var ids []int64
	err := s.db.Model(&dao.Comment{}).Where("story_id = ?", sid).
		Order("id ASC").Pluck("id", &ids).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []int64{c2.ID, bobCid}, ids)
}

func (s *HandlerTestSuite) TestLikeStory() {
	sid := s.createStory(otherUid, "bob", "Bob", "cerita bob")

	recorder := s.postLike("/stories/like", web.StoryIDReq{ID: sid})
	require.Equal(s.T(), 200, recorder.Code)
	status := recorder.MustScan().Data
	assert.True(s.T(), status.Liked)
	assert.Equal(s.T(), int64(1), status.LikeCnt)
	require.Len(s.T(), status.Likes, 1)
	assert.Equal(s.T(), uid, status.Likes[0].Uid)
	// 点赞明细带上昵称
	assert.Equal(s.T(), "Alice", status.Likes[0].Name)

	// 再点一次是取消
	recorder = s.postLike("/stories/like", web.StoryIDReq{ID: sid})
	require.Equal(s.T(), 200, recorder.Code)
	status = recorder.MustScan().Data
	assert.False(s.T(), status.Liked)
	assert.Equal(s.T(), int64(0), status.LikeCnt)
	assert.Empty(s.T(), status.Likes)

	// 点赞不产生任何通知
	var cnt int64
	err := s.db.Model(&notidao.Notification{}).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), cnt)

	// 不存在的 story 点不了
	recorder = s.postLike("/stories/like", web.StoryIDReq{ID: 99999})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 503002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestLikeComment() {
	sid := s.createStory(otherUid, "bob", "Bob", "cerita")
	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C1"})

	recorder := s.postLike("/comments/like", web.CommentIDReq{ID: c1.ID})
	require.Equal(s.T(), 200, recorder.Code)
	status := recorder.MustScan().Data
	assert.True(s.T(), status.Liked)
	assert.Equal(s.T(), int64(1), status.LikeCnt)
	require.Len(s.T(), status.Likes, 1)
	assert.Equal(s.T(), "Alice", status.Likes[0].Name)

	// 详情里能看到点赞状态
	recorder2 := s.post("/stories/detail", web.StoryIDReq{ID: sid})
	require.Equal(s.T(), 200, recorder2.Code)
	story := recorder2.MustScan().Data
	require.Len(s.T(), story.Comments, 1)
	assert.True(s.T(), story.Comments[0].Liked)
	assert.Equal(s.T(), int64(1), story.Comments[0].LikeCnt)
}

func (s *HandlerTestSuite) TestList() {
	sid1 := s.createStory(uid, "alice", "Alice", "pertama")
	sid2 := s.createStory(otherUid, "bob", "Bob", "kedua")
	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid1, Content: "C1"})
	s.mustReply(web.ReplyCommentReq{ParentID: c1.ID, Content: "R1"})
	s.mustComment(web.CreateCommentReq{StoryID: sid2, Content: "C1"})
	s.mustComment(web.CreateCommentReq{StoryID: sid2, Content: "C2"})

	recorder := s.postList("/stories/list", web.ListStoryReq{Limit: 10})
	require.Equal(s.T(), 200, recorder.Code)
	list := recorder.MustScan().Data.List
	require.Len(s.T(), list, 2)
	// 按发布时间倒序
	assert.Equal(s.T(), sid2, list[0].ID)
	assert.Equal(s.T(), int64(2), list[0].CommentCnt)
	assert.Equal(s.T(), int64(2), list[0].TotalCommentCnt)
	assert.Equal(s.T(), sid1, list[1].ID)
	assert.Equal(s.T(), int64(1), list[1].CommentCnt)
	assert.Equal(s.T(), int64(2), list[1].TotalCommentCnt)
	// 列表不带评论树
	assert.Empty(s.T(), list[0].Comments)
}

func (s *HandlerTestSuite) TestCommentDetail() {
	sid := s.createStory(otherUid, "bob", "Bob", "cerita")
	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C1"})
	r1 := s.mustReply(web.ReplyCommentReq{ParentID: c1.ID, Content: "R1"})
	s.mustReply(web.ReplyCommentReq{ParentID: r1.ID, Content: "R2"})

	recorder := s.postComment("/comments/detail", web.CommentIDReq{ID: c1.ID})
	require.Equal(s.T(), 200, recorder.Code)
	root := recorder.MustScan().Data
	assert.Equal(s.T(), c1.ID, root.ID)
	assert.Equal(s.T(), int64(2), root.ReplyCnt)
	require.Len(s.T(), root.Replies, 1)
	assert.Equal(s.T(), r1.ID, root.Replies[0].ID)

	// 不存在的评论
	recorder = s.postComment("/comments/detail", web.CommentIDReq{ID: 99999})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 503003, recorder.MustScan().Code)
}

// TestProfileStories 个人主页只展示实名发布的 story，
// 别人的匿名发布永远不会漏出去
func (s *HandlerTestSuite) TestProfileStories() {
	sid1 := s.createStory(otherUid, "bob", "Bob", "cerita pertama bob")
	// 匿名发布真实 uid 照常落库，但不该出现在个人主页
	now := time.Now().UnixMilli()
	anon := dao.Story{
		Uid:       otherUid,
		Username:  "Anonim",
		Name:      "Pengguna",
		Content:   "rahasia bob",
		Anonymous: true,
		Ctime:     now,
		Utime:     now,
	}
	err := s.db.WithContext(context.Background()).Create(&anon).Error
	require.NoError(s.T(), err)
	sid2 := s.createStory(otherUid, "bob", "Bob", "cerita kedua bob")
	s.mustComment(web.CreateCommentReq{StoryID: sid1, Content: "C1"})
	s.postLike("/stories/like", web.StoryIDReq{ID: sid1})

	recorder := s.postList("/stories/profile", web.ProfileStoriesReq{Username: "bob"})
	require.Equal(s.T(), 200, recorder.Code)
	list := recorder.MustScan().Data.List
	require.Len(s.T(), list, 2)
	// 新的在前，计数和点赞状态都带上
	assert.Equal(s.T(), sid2, list[0].ID)
	assert.Equal(s.T(), sid1, list[1].ID)
	assert.Equal(s.T(), int64(1), list[1].CommentCnt)
	assert.Equal(s.T(), int64(1), list[1].LikeCnt)
	assert.True(s.T(), list[1].Liked)

	// 不存在的用户名
	recorder = s.postList("/stories/profile", web.ProfileStoriesReq{Username: "nobody"})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 503006, recorder.MustScan().Code)
}

// TestOrphanComment 父节点已经被删掉的孤儿行不出现在树和计数里
func (s *HandlerTestSuite) TestOrphanComment() {
	sid := s.createStory(otherUid, "bob", "Bob", "cerita")
	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C1"})
	s.insertComment(uid, "alice", "Alice", sid, 99999, "yatim")

	recorder := s.post("/stories/detail", web.StoryIDReq{ID: sid})
	require.Equal(s.T(), 200, recorder.Code)
	story := recorder.MustScan().Data
	require.Len(s.T(), story.Comments, 1)
	assert.Equal(s.T(), c1.ID, story.Comments[0].ID)
	assert.Empty(s.T(), story.Comments[0].Replies)
	assert.Equal(s.T(), int64(1), story.CommentCnt)
	assert.Equal(s.T(), int64(1), story.TotalCommentCnt)
}

func (s *HandlerTestSuite) TestBlankCommentContent() {
	sid := s.createStory(otherUid, "bob", "Bob", "cerita")
	c1 := s.mustComment(web.CreateCommentReq{StoryID: sid, Content: "C1"})

	recorder := s.postComment("/comments/create", web.CreateCommentReq{StoryID: sid, Content: "   "})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 503005, recorder.MustScan().Code)

	recorder = s.postComment("/comments/reply", web.ReplyCommentReq{ParentID: c1.ID, Content: "\t\n"})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 503005, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) createStory(ownerUid int64, username, name, content string) int64 {
	now := time.Now().UnixMilli()
	entity := dao.Story{
		Uid:      ownerUid,
		Username: username,
		Name:     name,
		Content:  content,
		Ctime:    now,
		Utime:    now,
	}
	err := s.db.WithContext(context.Background()).Create(&entity).Error
	require.NoError(s.T(), err)
	return entity.ID
}

func (s *HandlerTestSuite) insertComment(commenterUid int64,
	username, name string, sid, pid int64, content string) int64 {
	now := time.Now().UnixMilli()
	entity := dao.Comment{
		Uid:      commenterUid,
		Username: username,
		Name:     name,
		StoryID:  sid,
		ParentID: sql.Null[int64]{V: pid, Valid: pid != 0},
		Content:  content,
		Ctime:    now,
		Utime:    now,
	}
	err := s.db.WithContext(context.Background()).Create(&entity).Error
	require.NoError(s.T(), err)
	return entity.ID
}

func (s *HandlerTestSuite) mustComment(req web.CreateCommentReq) web.Comment {
	recorder := s.postComment("/comments/create", req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	require.Equal(s.T(), 0, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) mustReply(req web.ReplyCommentReq) web.Comment {
	recorder := s.postComment("/comments/reply", req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	require.Equal(s.T(), 0, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) post(path string, body any) test.JSONResponseRecorder[web.Story] {
	return doPost[web.Story](s, path, body)
}

func (s *HandlerTestSuite) postComment(path string, body any) test.JSONResponseRecorder[web.Comment] {
	return doPost[web.Comment](s, path, body)
}

func (s *HandlerTestSuite) postLike(path string, body any) test.JSONResponseRecorder[web.LikeStatus] {
	return doPost[web.LikeStatus](s, path, body)
}

func (s *HandlerTestSuite) postList(path string, body any) test.JSONResponseRecorder[web.StoryList] {
	return doPost[web.StoryList](s, path, body)
}

func doPost[T any](s *HandlerTestSuite, path string, body any) test.JSONResponseRecorder[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
