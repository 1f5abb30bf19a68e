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

	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/errs"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Chat struct {
	ID       int64  `json:"id"`
	Message  string `json:"message"`
	Response string `json:"response"`
	Ctime    int64  `json:"ctime"`
}

type HistoryResp struct {
	Chats []Chat `json:"chats"`
	Total int    `json:"total"`
}

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ChatService
}

func NewHandler(svc service.ChatService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/chatbot")
	g.POST("/history", ginx.S(h.History))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) History(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	chats, err := h.svc.History(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: HistoryResp{
			Chats: slice.Map(chats, func(_ int, src domain.ChatRecord) Chat {
				return Chat{
					ID:       src.ID,
					Message:  src.Message,
					Response: src.Response,
					Ctime:    src.Ctime,
				}
			}),
			Total: len(chats),
		},
	}, nil
}
