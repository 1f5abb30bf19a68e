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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
)

func (h *Handler) CreateComment(ctx *ginx.Context, req CreateCommentReq, sess session.Session) (ginx.Result, error) {
	comment, err := h.commentSvc.Create(ctx, sess.Claims().Uid, req.StoryID, req.Content)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newComment(comment),
	}, nil
}

func (h *Handler) ReplyComment(ctx *ginx.Context, req ReplyCommentReq, sess session.Session) (ginx.Result, error) {
	reply, err := h.commentSvc.Reply(ctx, sess.Claims().Uid, req.ParentID, req.Content)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newComment(reply),
	}, nil
}

func (h *Handler) CommentDetail(ctx *ginx.Context, req CommentIDReq, sess session.Session) (ginx.Result, error) {
	comment, err := h.commentSvc.Detail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newComment(comment),
	}, nil
}

func (h *Handler) DeleteComment(ctx *ginx.Context, req CommentIDReq, sess session.Session) (ginx.Result, error) {
	err := h.commentSvc.Delete(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) LikeComment(ctx *ginx.Context, req CommentIDReq, sess session.Session) (ginx.Result, error) {
	status, err := h.commentSvc.Like(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newLikeStatus(status),
	}, nil
}
