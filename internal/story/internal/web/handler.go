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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/story/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc        service.StoryService
	commentSvc service.CommentService
}

func NewHandler(svc service.StoryService, commentSvc service.CommentService) *Handler {
	return &Handler{
		svc:        svc,
		commentSvc: commentSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/stories")
	g.POST("/create", ginx.BS[CreateStoryReq](h.Create))
	g.POST("/list", ginx.BS[ListStoryReq](h.List))
	g.POST("/profile", ginx.BS[ProfileStoriesReq](h.ProfileStories))
	g.POST("/detail", ginx.BS[StoryIDReq](h.Detail))
	g.POST("/edit", ginx.BS[EditStoryReq](h.Edit))
	g.POST("/delete", ginx.BS[StoryIDReq](h.Delete))
	g.POST("/like", ginx.BS[StoryIDReq](h.Like))

	c := server.Group("/comments")
	c.POST("/create", ginx.BS[CreateCommentReq](h.CreateComment))
	c.POST("/reply", ginx.BS[ReplyCommentReq](h.ReplyComment))
	c.POST("/detail", ginx.BS[CommentIDReq](h.CommentDetail))
	c.POST("/delete", ginx.BS[CommentIDReq](h.DeleteComment))
	c.POST("/like", ginx.BS[CommentIDReq](h.LikeComment))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateStoryReq, sess session.Session) (ginx.Result, error) {
	story, err := h.svc.Create(ctx, sess.Claims().Uid, req.Content, req.Anonymous)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newStory(story),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListStoryReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	stories, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: StoryList{
			List: slice.Map(stories, func(_ int, src domain.Story) Story {
				return newStory(src)
			}),
		},
	}, nil
}

// ProfileStories 个人主页的 story 列表，别人看也只能看到实名发布的
func (h *Handler) ProfileStories(ctx *ginx.Context, req ProfileStoriesReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	stories, err := h.svc.ProfileStories(ctx, sess.Claims().Uid, req.Username, req.Offset, req.Limit)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: StoryList{
			List: slice.Map(stories, func(_ int, src domain.Story) Story {
				return newStory(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req StoryIDReq, sess session.Session) (ginx.Result, error) {
	story, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newStory(story),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditStoryReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Edit(ctx, sess.Claims().Uid, req.ID, req.Content)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req StoryIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Like(ctx *ginx.Context, req StoryIDReq, sess session.Session) (ginx.Result, error) {
	status, err := h.svc.Like(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newLikeStatus(status),
	}, nil
}
