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
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

	"github.com/mindblowndbs/mindblown/internal/chatbot"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/integration/startup"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/service"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/web"
	"github.com/mindblowndbs/mindblown/internal/test"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
)

const uid = int64(2091)

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    chatbot.Service
	relay  *httptest.Server
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.relay = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID  string `json:"user_id"`
			Message string `json:"message"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(s.T(), err)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"response": "jawaban untuk: " + req.Message,
		})
	}))
	econf.Set("chatbot.endpoint", s.relay.URL)
	econf.Set("chatbot.timeout", "5s")
	econf.Set("chatbot.minInterval", "10s")

	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = module.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ModuleTestSuite) TearDownSuite() {
	s.relay.Close()
	err := s.db.Exec("DROP TABLE `chat_histories`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `chat_histories`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestAsk() {
	ctx := context.Background()
	resp, err := s.svc.Ask(ctx, "user_2091", uid, "apa kabar?")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "jawaban untuk: apa kabar?", resp)

	// 登录用户的问答落历史
	var records []dao.ChatHistory
	err = s.db.Where("uid = ?", uid).Find(&records).Error
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 1)
	assert.Equal(s.T(), "apa kabar?", records[0].Message)
	assert.Equal(s.T(), "jawaban untuk: apa kabar?", records[0].Response)

	// 同一用户间隔内再问会被限流
	_, err = s.svc.Ask(ctx, "user_2091", uid, "lagi?")
	var limited service.ErrRateLimited
	require.ErrorAs(s.T(), err, &limited)
	assert.True(s.T(), limited.WaitSeconds > 0)

	// 匿名用户正常问答，但不落历史
	resp, err = s.svc.Ask(ctx, "anonymous_abc", 0, "halo")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "jawaban untuk: halo", resp)
	var cnt int64
	err = s.db.Model(&dao.ChatHistory{}).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)
}

func (s *ModuleTestSuite) TestHistory() {
	now := time.Now().UnixMilli()
	for i, msg := range []string{"pertama", "kedua"} {
		err := s.db.Create(&dao.ChatHistory{
			Uid:      uid,
			Message:  msg,
			Response: "jawaban " + msg,
			Ctime:    now + int64(i),
			Utime:    now + int64(i),
		}).Error
		require.NoError(s.T(), err)
	}
	err := s.db.Create(&dao.ChatHistory{
		Uid: 9999, Message: "punya orang lain", Response: "x",
		Ctime: now, Utime: now,
	}).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/chatbot/history", iox.NewJSONReader(struct{}{}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.HistoryResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	data := recorder.MustScan().Data
	assert.Equal(s.T(), 2, data.Total)
	require.Len(s.T(), data.Chats, 2)
	// 最新的在前面
	assert.Equal(s.T(), "kedua", data.Chats[0].Message)
	assert.Equal(s.T(), "pertama", data.Chats[1].Message)
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}
