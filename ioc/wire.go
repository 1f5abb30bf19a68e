//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/chatbot"
	"github.com/mindblowndbs/mindblown/internal/interactive"
	"github.com/mindblowndbs/mindblown/internal/mindtracker"
	"github.com/mindblowndbs/mindblown/internal/notification"
	"github.com/mindblowndbs/mindblown/internal/story"
	"github.com/mindblowndbs/mindblown/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		interactive.InitModule,
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		notification.InitModule,
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		story.InitModule,
		wire.FieldsOf(new(*story.Module), "Hdl"),
		mindtracker.InitModule,
		wire.FieldsOf(new(*mindtracker.Module), "Hdl"),
		chatbot.InitModule,
		wire.FieldsOf(new(*chatbot.Module), "Hdl", "WSHdl"),
		InitSession,
		initGinxServer,
		initCronJobs,
	)
	return new(App), nil
}
