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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/domain"
)

// fakeChatService 只记录 EndSession 的调用
type fakeChatService struct {
	ended []string
}

func (f *fakeChatService) Ask(_ context.Context, _ string, _ int64, _ string) (string, error) {
	return "", nil
}

func (f *fakeChatService) History(_ context.Context, _ int64) ([]domain.ChatRecord, error) {
	return nil, nil
}

func (f *fakeChatService) EndSession(userID string) {
	f.ended = append(f.ended, userID)
}

func TestWSHandler_UnregisterReleasesSession(t *testing.T) {
	svc := &fakeChatService{}
	h := NewWSHandler(svc)
	c := &wsConn{
		userID:    "anonymous_abc",
		anonymous: true,
	}

	h.register("conn-1", c)
	require.Len(t, h.conns, 1)

	h.unregister("conn-1")
	assert.Empty(t, h.conns)
	// 断开之后匿名 key 的限流窗口也释放掉，不会滞留
	assert.Equal(t, []string{"anonymous_abc"}, svc.ended)

	// 重复注销不会再触发释放
	h.unregister("conn-1")
	assert.Equal(t, []string{"anonymous_abc"}, svc.ended)
}

func TestWSHandler_AuthSwitchReleasesAnonymousKey(t *testing.T) {
	svc := &fakeChatService{}
	h := NewWSHandler(svc)
	c := &wsConn{
		userID:    "anonymous_abc",
		anonymous: true,
	}

	frame := h.authenticate(c, inboundFrame{Type: "auth", UserID: 42})
	assert.Equal(t, "auth_success", frame.Type)
	assert.Equal(t, int64(42), c.uid)
	assert.Equal(t, "user_42", c.userID)
	assert.False(t, c.anonymous)
	// 换身份之后旧的匿名 key 立刻释放
	assert.Equal(t, []string{"anonymous_abc"}, svc.ended)
}

func TestWSHandler_AnonymousAuthKeepsSession(t *testing.T) {
	svc := &fakeChatService{}
	h := NewWSHandler(svc)
	c := &wsConn{
		userID:    "anonymous_abc",
		anonymous: true,
	}

	frame := h.authenticate(c, inboundFrame{Type: "auth"})
	assert.Equal(t, "auth_anonymous", frame.Type)
	assert.Equal(t, "anonymous_abc", c.userID)
	assert.True(t, c.anonymous)
	assert.Empty(t, svc.ended)
}
