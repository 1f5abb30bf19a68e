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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/mindblowndbs/mindblown/internal/notification/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.NotificationService
}

func NewHandler(svc service.NotificationService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notifications")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/read", ginx.BS[MarkReadReq](h.MarkRead))
	g.POST("/read-all", ginx.S(h.MarkAllRead))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if req.Limit <= 0 {
		req.Limit = 50
	}
	list, err := h.svc.List(ctx, uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	unread, err := h.svc.UnreadCount(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			List: slice.Map(list, func(_ int, src domain.Notification) Notification {
				return newNotification(src)
			}),
			UnreadCount: unread,
		},
	}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req MarkReadReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkRead(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return notFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) MarkAllRead(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkAllRead(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
