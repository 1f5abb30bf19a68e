package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/mindblowndbs/mindblown/internal/chatbot"
	"github.com/mindblowndbs/mindblown/internal/interactive"
	"github.com/mindblowndbs/mindblown/internal/mindtracker"
	"github.com/mindblowndbs/mindblown/internal/notification"
	"github.com/mindblowndbs/mindblown/internal/story"
	"github.com/mindblowndbs/mindblown/internal/user"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	storyHdl *story.Handler,
	intrHdl *interactive.Handler,
	notiHdl *notification.Handler,
	mtHdl *mindtracker.Handler,
	chatHdl *chatbot.Handler,
	wsHdl *chatbot.WSHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "mindblown.id")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	// WebSocket 自己做认证，匿名用户也能聊
	wsHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	storyHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)
	notiHdl.PrivateRoutes(res.Engine)
	mtHdl.PrivateRoutes(res.Engine)
	chatHdl.PrivateRoutes(res.Engine)
	return res
}
