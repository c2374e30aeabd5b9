package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/logger"
	tghelpers "github.com/Remphph/Track-bot/internal/telegram/helpers"
)

// onUnknownText handles text that matched no command, menu label, or dialog
// state. Messages that trip the content filter are dropped without a reply.
func (a *App) onUnknownText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	text := c.Text()

	if a.filter.Hit(text) {
		logger.Warn(ctx, "bot", "message.blocked",
			slog.Int64("user_id", c.Sender().ID),
			slog.String("text", logger.SanitizeLimit(text, 128)),
		)
		return nil
	}
	return c.Send(msgUseMenu, a.mainMenu())
}
