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

	"github.com/mindblowndbs/mindblown/internal/test"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
	"github.com/mindblowndbs/mindblown/internal/user"
	"github.com/mindblowndbs/mindblown/internal/user/internal/integration/startup"
	"github.com/mindblowndbs/mindblown/internal/user/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/user/internal/web"
)

const (
	uid      = int64(2111)
	otherUid = int64(2112)
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    user.UserService
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
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.svc = module.Svc
	s.db = testioc.InitDB()
	now := time.Now().UnixMilli()
	err = s.db.Create(&dao.User{
		Id: uid, SN: "sn-u-alice", Username: "alice", Name: "Alice",
		Avatar: "https://cdn.mindblown.id/avatar/alice.png",
		Ctime:  now, Utime: now,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create(&dao.User{
		Id: otherUid, SN: "sn-u-bob", Username: "bob", Name: "Bob",
		Ctime: now, Utime: now,
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestProfile() {
	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), web.Profile{
		Id:       uid,
		SN:       "sn-u-alice",
		Username: "alice",
		Name:     "Alice",
		Avatar:   "https://cdn.mindblown.id/avatar/alice.png",
	}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestPublicProfile() {
	testCases := []struct {
		name     string
		username string
		wantCode int
		after    func(t *testing.T, res test.Result[web.Profile])
	}{
		{
			name:     "按用户名查公开主页",
			username: "bob",
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Profile]) {
				assert.Equal(t, web.Profile{
					Id:       otherUid,
					SN:       "sn-u-bob",
					Username: "bob",
					Name:     "Bob",
				}, res.Data)
			},
		},
		{
			name:     "用户不存在",
			username: "nobody",
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Profile]) {
				assert.Equal(t, 501002, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/profile/"+tc.username, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestFindOrCreateByUsername() {
	ctx := context.Background()
	created, err := s.svc.FindOrCreateByUsername(ctx, "charlie")
	require.NoError(s.T(), err)
	assert.NotZero(s.T(), created.Id)
	assert.NotEmpty(s.T(), created.SN)
	// 重复注册返回同一个用户
	again, err := s.svc.FindOrCreateByUsername(ctx, "charlie")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.Id, again.Id)
	assert.Equal(s.T(), created.SN, again.SN)
	// 已有档案的用户不会被覆盖
	existing, err := s.svc.FindOrCreateByUsername(ctx, "alice")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uid, existing.Id)
	assert.Equal(s.T(), "sn-u-alice", existing.SN)
}

func (s *HandlerTestSuite) TestEdit() {
	req, err := http.NewRequest(http.MethodPost, "/users/profile",
		iox.NewJSONReader(web.EditReq{
			Name:   "Alice B",
			Avatar: "https://cdn.mindblown.id/avatar/new.png",
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	var entity dao.User
	err = s.db.Where("id = ?", uid).First(&entity).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Alice B", entity.Name)
	assert.Equal(s.T(), "https://cdn.mindblown.id/avatar/new.png", entity.Avatar)
	// 序列号和用户名不允许改
	assert.Equal(s.T(), "sn-u-alice", entity.SN)
	assert.Equal(s.T(), "alice", entity.Username)

	// 缓存会被失效，再查 profile 拿到的是新数据
	req, err = http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(s.T(), err)
	profileRecorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(profileRecorder, req)
	require.Equal(s.T(), 200, profileRecorder.Code)
	assert.Equal(s.T(), "Alice B", profileRecorder.MustScan().Data.Name)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
