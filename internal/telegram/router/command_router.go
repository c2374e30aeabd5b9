package router

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/logger"
	tg "github.com/Remphph/Track-bot/internal/telegram"
	"github.com/Remphph/Track-bot/internal/telegram/middleware"
)

// CommandRoutes binds every registered slash command to its own endpoint.
// Menu-label aliases are not bound here; the text router resolves them.
func CommandRoutes(reg *tg.Registry) []tg.Route {
	routes := make([]tg.Route, 0, len(reg.Commands()))
	for name, cmd := range reg.Commands() {
		routes = append(routes, tg.Route{
			Endpoint: name,
			Handler:  wrapCommand(name, cmd.Handler),
		})
	}
	logger.Info(context.Background(), "tg.wire", "routes.built",
		slog.Int("commands", len(routes)),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)
	return routes
}

func wrapCommand(name string, h tele.HandlerFunc) tele.HandlerFunc {
	handlerName := "command." + normalizeHandlerName(strings.TrimPrefix(name, "/"))
	wrapped := func(c tele.Context) error {
		start := time.Now()
		return handleWithSummary(c, handlerName, start, func() error {
			return h(c)
		})
	}
	return middleware.RecoverMiddleware(middleware.LoggerMiddleware(wrapped))
}
