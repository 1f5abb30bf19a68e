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

	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.MindTrackerService
}

func NewHandler(svc service.MindTrackerService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/mind-tracker")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/check", ginx.BS[DayReq](h.Check))
	g.POST("/detail", ginx.BS[DayReq](h.Detail))
	g.POST("/list", ginx.S(h.List))
	// 定时触发出问题时手动兜底
	g.POST("/remind", ginx.S(h.Remind))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	entry, err := h.svc.Save(ctx, sess.Claims().Uid, req.Mood, req.Progress)
	if err != nil {
		if errors.Is(err, service.ErrEmptyProgress) {
			return invalidInputResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEntry(entry),
	}, nil
}

func (h *Handler) Check(ctx *ginx.Context, req DayReq, sess session.Session) (ginx.Result, error) {
	exists, err := h.svc.CheckDay(ctx, sess.Claims().Uid, req.Day)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CheckResp{Exists: exists},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DayReq, sess session.Session) (ginx.Result, error) {
	entry, err := h.svc.GetByDay(ctx, sess.Claims().Uid, req.Day)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			// 没打卡不算错误，data 为空
			return ginx.Result{}, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEntry(entry),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	entries, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Entries: slice.Map(entries, func(_ int, src domain.Entry) Entry {
				return newEntry(src)
			}),
		},
	}, nil
}

func (h *Handler) Remind(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	err := h.svc.Remind(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func newEntry(e domain.Entry) Entry {
	return Entry{
		ID:       e.ID,
		Mood:     e.Mood,
		Progress: e.Progress,
		Day:      e.Day,
		Ctime:    e.Ctime,
	}
}
