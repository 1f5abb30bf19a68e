//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/interactive"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
)

func InitModule() (*interactive.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitMQ,
		interactive.InitModule,
	)
	return new(interactive.Module), nil
}
