//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/interactive"
	"github.com/mindblowndbs/mindblown/internal/notification"
	"github.com/mindblowndbs/mindblown/internal/story"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
	"github.com/mindblowndbs/mindblown/internal/user"
)

func InitModule() (*story.Module, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitModule,
		interactive.InitModule,
		notification.InitModule,
		story.InitModule,
	)
	return new(story.Module), nil
}
