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
	"github.com/gin-gonic/gin"

	"github.com/mindblowndbs/mindblown/internal/interactive/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 只暴露计数查询。
// 点赞和浏览的写入口由资源所属模块提供，保证先校验资源存在再动台账。
type Handler struct {
	svc service.InteractiveService
}

func NewHandler(svc service.InteractiveService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	// 统一用 POST 请求，懒得去处理不同的
	g.POST("/cnt", ginx.BS[GetCntReq](h.GetCnt))
	g.POST("/cnt/batch", ginx.BS[BatchGetCntReq](h.BatchGetCnt))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq, sess session.Session) (ginx.Result, error) {
	intr, err := h.svc.Get(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: GetCntResp{
			LikeCnt: intr.LikeCnt,
			ViewCnt: intr.ViewCnt,
			Liked:   intr.Liked,
		},
	}, nil
}

func (h *Handler) BatchGetCnt(ctx *ginx.Context, req BatchGetCntReq, sess session.Session) (ginx.Result, error) {
	intrs, err := h.svc.GetByIds(ctx, req.Biz, sess.Claims().Uid, req.BizIds)
	if err != nil {
		return systemErrorResult, err
	}
	intrMap := make(map[int64]Interactive, len(intrs))
	for id, intr := range intrs {
		intrMap[id] = Interactive{
			ID:      intr.BizId,
			LikeCnt: intr.LikeCnt,
			ViewCnt: intr.ViewCnt,
			Liked:   intr.Liked,
		}
	}
	return ginx.Result{
		Data: BatchGetCntResp{
			InteractiveMap: intrMap,
		},
	}, nil
}
