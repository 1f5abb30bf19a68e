//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/notification"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
)

func InitModule() (*notification.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitMQ,
		notification.InitModule,
	)
	return new(notification.Module), nil
}
