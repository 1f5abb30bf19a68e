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

	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/integration/startup"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/web"
	notidao "github.com/mindblowndbs/mindblown/internal/notification/internal/repository/dao"
	"github.com/mindblowndbs/mindblown/internal/test"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
	userdao "github.com/mindblowndbs/mindblown/internal/user/internal/repository/dao"
)

const (
	uid      = int64(2081)
	otherUid = int64(2082)
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
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
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	now := time.Now().UnixMilli()
	err = s.db.Create(&userdao.User{
		Id: uid, SN: "sn-mt-alice", Username: "alice", Name: "Alice",
		Ctime: now, Utime: now,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create(&userdao.User{
		Id: otherUid, SN: "sn-mt-bob", Username: "bob", Name: "Bob",
		Ctime: now, Utime: now,
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"mind_tracker_entries", "notifications", "users"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"mind_tracker_entries", "notifications"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestSave() {
	today := time.Now().Format("2006-01-02")
	testCases := []struct {
		name     string
		req      web.SaveReq
		wantCode int
		after    func(t *testing.T, res test.Result[web.Entry])
	}{
		{
			name:     "正常打卡",
			req:      web.SaveReq{Mood: "senang", Progress: "selesai menulis jurnal"},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Entry]) {
				require.Equal(t, 0, res.Code)
				assert.Equal(t, today, res.Data.Day)
				assert.Equal(t, "senang", res.Data.Mood)
				var entity dao.Entry
				err := s.db.Where("uid = ? AND day = ?", uid, today).First(&entity).Error
				require.NoError(t, err)
				assert.Equal(t, "alice", entity.Username)
			},
		},
		{
			name:     "progress 为空",
			req:      web.SaveReq{Mood: "biasa"},
			wantCode: 200,
			after: func(t *testing.T, res test.Result[web.Entry]) {
				assert.Equal(t, 506002, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := doPost[web.Entry](s, "/mind-tracker/save", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestCheckAndDetail() {
	today := time.Now().Format("2006-01-02")
	s.insertEntry(uid, today, "senang", "menulis")

	recorder := doPost[web.CheckResp](s, "/mind-tracker/check", web.DayReq{Day: today})
	require.Equal(s.T(), 200, recorder.Code)
	assert.True(s.T(), recorder.MustScan().Data.Exists)

	recorder = doPost[web.CheckResp](s, "/mind-tracker/check", web.DayReq{Day: "2001-01-01"})
	require.Equal(s.T(), 200, recorder.Code)
	assert.False(s.T(), recorder.MustScan().Data.Exists)

	detail := doPost[web.Entry](s, "/mind-tracker/detail", web.DayReq{Day: today})
	require.Equal(s.T(), 200, detail.Code)
	res := detail.MustScan()
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), "menulis", res.Data.Progress)

	// 没打卡返回空 data，不算错误
	detail = doPost[web.Entry](s, "/mind-tracker/detail", web.DayReq{Day: "2001-01-01"})
	require.Equal(s.T(), 200, detail.Code)
	res = detail.MustScan()
	assert.Equal(s.T(), 0, res.Code)
	assert.Zero(s.T(), res.Data.ID)
}

func (s *HandlerTestSuite) TestList() {
	s.insertEntry(uid, "2026-01-01", "senang", "pertama")
	s.insertEntry(uid, "2026-01-02", "biasa", "kedua")
	s.insertEntry(otherUid, "2026-01-02", "sedih", "punya bob")

	recorder := doPost[web.ListResp](s, "/mind-tracker/list", struct{}{})
	require.Equal(s.T(), 200, recorder.Code)
	entries := recorder.MustScan().Data.Entries
	// 只有自己的记录，新的在前
	require.Len(s.T(), entries, 2)
	assert.Equal(s.T(), "kedua", entries[0].Progress)
	assert.Equal(s.T(), "2026-01-02", entries[0].Day)
	assert.Equal(s.T(), "pertama", entries[1].Progress)
}

// TestRemind 今天打过卡的不提醒，没打卡的收到站内信
func (s *HandlerTestSuite) TestRemind() {
	today := time.Now().Format("2006-01-02")
	s.insertEntry(uid, today, "senang", "sudah")

	recorder := doPost[any](s, "/mind-tracker/remind", struct{}{})
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), 0, recorder.MustScan().Code)

	var notis []notidao.Notification
	err := s.db.Find(&notis).Error
	require.NoError(s.T(), err)
	require.Len(s.T(), notis, 1)
	assert.Equal(s.T(), otherUid, notis[0].Uid)
	assert.Equal(s.T(), "reminder", notis[0].Type)
	assert.Equal(s.T(), "MindBlown", notis[0].FromUsername)
	assert.Equal(s.T(), "Hai, Kamu belum mengisi Daily Mind Tracker-mu", notis[0].Message)
}

func (s *HandlerTestSuite) insertEntry(entryUid int64, day, mood, progress string) {
	now := time.Now().UnixMilli()
	err := s.db.Create(&dao.Entry{
		Uid:      entryUid,
		Username: "alice",
		Mood:     mood,
		Progress: progress,
		Day:      day,
		Ctime:    now,
		Utime:    now,
	}).Error
	require.NoError(s.T(), err)
}

func doPost[T any](s *HandlerTestSuite, path string, body any) test.JSONResponseRecorder[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
