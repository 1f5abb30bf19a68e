package web

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mindblowndbs/mindblown/internal/test"
	"github.com/mindblowndbs/mindblown/internal/user/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/user/internal/service"
	svcmocks "github.com/mindblowndbs/mindblown/internal/user/mocks"
)

const testUid = int64(123)

func newTestServer(hdl *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUid,
		}))
	})
	hdl.PublicRoutes(server)
	hdl.PrivateRoutes(server)
	return server
}

func TestHandler_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := svcmocks.NewMockUserService(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), testUid).Return(domain.User{
		Id:       testUid,
		SN:       "sn-abc",
		Username: "alice",
		Name:     "Alice",
		Avatar:   "https://cdn.mindblown.id/avatar/alice.png",
	}, nil)
	server := newTestServer(NewHandler(userSvc))

	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, Profile{
		Id:       testUid,
		SN:       "sn-abc",
		Username: "alice",
		Name:     "Alice",
		Avatar:   "https://cdn.mindblown.id/avatar/alice.png",
	}, recorder.MustScan().Data)
}

func TestHandler_PublicProfile(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.UserService
		username string

		wantCode int
		wantResp test.Result[Profile]
	}{
		{
			name: "找到用户",
			mock: func(ctrl *gomock.Controller) service.UserService {
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().ProfileByUsername(gomock.Any(), "bob").
					Return(domain.User{
						Id:       456,
						SN:       "sn-def",
						Username: "bob",
						Name:     "Bob",
					}, nil)
				return userSvc
			},
			username: "bob",
			wantCode: 200,
			wantResp: test.Result[Profile]{
				Data: Profile{
					Id:       456,
					SN:       "sn-def",
					Username: "bob",
					Name:     "Bob",
				},
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) service.UserService {
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().ProfileByUsername(gomock.Any(), "nobody").
					Return(domain.User{}, service.ErrUserNotFound)
				return userSvc
			},
			username: "nobody",
			wantCode: 200,
			wantResp: test.Result[Profile]{
				Code: 501002,
				Msg:  "用户不存在",
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.UserService {
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().ProfileByUsername(gomock.Any(), "bob").
					Return(domain.User{}, errors.New("mock db 错误"))
				return userSvc
			},
			username: "bob",
			wantCode: 500,
			wantResp: test.Result[Profile]{
				Code: 501001,
				Msg:  "系统错误",
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := newTestServer(NewHandler(tc.mock(ctrl)))
			req, err := http.NewRequest(http.MethodGet, "/profile/"+tc.username, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Profile]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp, err := recorder.Scan()
			require.NoError(t, err)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}

func TestHandler_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := svcmocks.NewMockUserService(ctrl)
	userSvc.EXPECT().UpdateNonSensitiveInfo(gomock.Any(), domain.User{
		Id:     testUid,
		Name:   "Alice B",
		Avatar: "https://cdn.mindblown.id/avatar/new.png",
	}).Return(nil)
	server := newTestServer(NewHandler(userSvc))

	req, err := http.NewRequest(http.MethodPost, "/users/profile",
		iox.NewJSONReader(EditReq{
			Name:   "Alice B",
			Avatar: "https://cdn.mindblown.id/avatar/new.png",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "OK", recorder.MustScan().Msg)
}
