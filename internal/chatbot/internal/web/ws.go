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
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"

	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/service"
)

// 客户端来的帧
type inboundFrame struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	UserID    int64  `json:"userId"`
}

type outboundFrame struct {
	Type          string `json:"type"`
	Message       string `json:"message,omitempty"`
	RequestID     string `json:"requestId,omitempty"`
	ConnectionID  string `json:"connectionId,omitempty"`
	AnonymousID   string `json:"anonymousId,omitempty"`
	IsAnonymous   bool   `json:"isAnonymous"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	RetryAfter    int    `json:"retryAfter,omitempty"`
	Data          any    `json:"data,omitempty"`
}

type responseData struct {
	Message        string `json:"message"`
	Response       string `json:"response"`
	ProcessingTime string `json:"processingTime"`
	Timestamp      string `json:"timestamp"`
}

// wsConn 一条连接的会话状态。默认匿名，auth 帧之后换成真实身份
type wsConn struct {
	conn      *websocket.Conn
	userID    string
	uid       int64
	anonymous bool
}

type WSHandler struct {
	svc      service.ChatService
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*wsConn

	logger *elog.Component
}

func NewWSHandler(svc service.ChatService) *WSHandler {
	return &WSHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		conns:  make(map[string]*wsConn),
		logger: elog.DefaultLogger,
	}
}

func (h *WSHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/chatbot-ws", h.Serve)
}

func (h *WSHandler) Serve(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error("websocket 升级失败", elog.FieldErr(err))
		return
	}
	connID := uuid.NewString()
	c := &wsConn{
		conn:      conn,
		userID:    "anonymous_" + uuid.NewString(),
		anonymous: true,
	}
	h.register(connID, c)
	defer h.unregister(connID)

	h.send(c, outboundFrame{
		Type:         "connected",
		Message:      "Connected to MindBlown chatbot",
		ConnectionID: connID,
		AnonymousID:  c.userID,
		IsAnonymous:  c.anonymous,
	})
	// 帧是串行处理的，一轮问答期间的新请求会排队
	for {
		var frame inboundFrame
		err = conn.ReadJSON(&frame)
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket 读取失败", elog.FieldErr(err))
			}
			return
		}
		switch frame.Type {
		case "auth":
			h.handleAuth(c, frame)
		case "chatbot_request":
			h.handleRequest(ctx.Request.Context(), c, frame)
		default:
			h.send(c, outboundFrame{
				Type:        "error",
				Message:     "Invalid request format",
				RequestID:   frame.RequestID,
				IsAnonymous: c.anonymous,
			})
		}
	}
}

func (h *WSHandler) handleAuth(c *wsConn, frame inboundFrame) {
	h.send(c, h.authenticate(c, frame))
}

func (h *WSHandler) authenticate(c *wsConn, frame inboundFrame) outboundFrame {
	if frame.UserID > 0 {
		// 旧的匿名 key 不会再被用到，限流窗口跟着释放
		h.svc.EndSession(c.userID)
		c.uid = frame.UserID
		c.userID = fmt.Sprintf("user_%d", frame.UserID)
		c.anonymous = false
		return outboundFrame{
			Type:    "auth_success",
			Message: "Authentication successful",
		}
	}
	return outboundFrame{
		Type:        "auth_anonymous",
		Message:     "Using anonymous session",
		AnonymousID: c.userID,
		IsAnonymous: true,
	}
}

func (h *WSHandler) handleRequest(ctx context.Context, c *wsConn, frame inboundFrame) {
	h.send(c, outboundFrame{
		Type:          "chatbot_processing",
		Message:       "MindBlown sedang memproses pesan Anda...",
		RequestID:     frame.RequestID,
		EstimatedTime: "3-5 menit",
		IsAnonymous:   c.anonymous,
	})
	start := time.Now()
	response, err := h.svc.Ask(ctx, c.userID, c.uid, frame.Message)
	if err != nil {
		h.send(c, outboundFrame{
			Type:        "chatbot_error",
			Message:     relayErrorMessage(err),
			RequestID:   frame.RequestID,
			RetryAfter:  30,
			IsAnonymous: c.anonymous,
		})
		return
	}
	h.send(c, outboundFrame{
		Type:      "chatbot_response",
		RequestID: frame.RequestID,
		Data: responseData{
			Message:        frame.Message,
			Response:       response,
			ProcessingTime: fmt.Sprintf("%d detik", int(time.Since(start).Seconds())),
			Timestamp:      time.Now().Format(time.RFC3339),
		},
		IsAnonymous: c.anonymous,
	})
}

func relayErrorMessage(err error) string {
	var rateLimited service.ErrRateLimited
	switch {
	case errors.As(err, &rateLimited):
		return fmt.Sprintf("Mohon tunggu %d detik sebelum mengirim pesan lagi", rateLimited.WaitSeconds)
	case errors.Is(err, service.ErrEmptyMessage):
		return "Message cannot be empty"
	case errors.Is(err, service.ErrRelayTimeout):
		return "Request timeout - Chatbot membutuhkan waktu terlalu lama"
	default:
		return "Tidak dapat menghubungi chatbot service - coba lagi nanti"
	}
}

func (h *WSHandler) send(c *wsConn, frame outboundFrame) {
	err := c.conn.WriteJSON(frame)
	if err != nil {
		h.logger.Warn("websocket 写入失败", elog.FieldErr(err))
	}
}

func (h *WSHandler) register(id string, c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = c
}

func (h *WSHandler) unregister(id string) {
	h.mu.Lock()
	c, ok := h.conns[id]
	delete(h.conns, id)
	h.mu.Unlock()
	if ok {
		h.svc.EndSession(c.userID)
	}
}
