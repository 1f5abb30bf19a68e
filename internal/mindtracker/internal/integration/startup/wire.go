//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/mindtracker"
	"github.com/mindblowndbs/mindblown/internal/notification"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
	"github.com/mindblowndbs/mindblown/internal/user"
)

func InitModule() (*mindtracker.Module, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitModule,
		notification.InitModule,
		mindtracker.InitModule,
	)
	return new(mindtracker.Module), nil
}
