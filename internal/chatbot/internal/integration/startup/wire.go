//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/mindblowndbs/mindblown/internal/chatbot"
	testioc "github.com/mindblowndbs/mindblown/internal/test/ioc"
)

func InitModule() (*chatbot.Module, error) {
	wire.Build(
		testioc.InitDB,
		chatbot.InitModule,
	)
	return new(chatbot.Module), nil
}
