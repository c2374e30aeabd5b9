package bot

import (
	"context"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/logger"
	"github.com/Remphph/Track-bot/internal/service"
)

// Outbound pushes go through the sender dispatcher: a failed delivery is
// retried there and, if it still fails, logged rather than surfaced to the
// handler that triggered it.

func (a *App) notifyNewTask(ctx context.Context, res *service.CreateResult, taskType string) {
	text := fmt.Sprintf("📩 New Task from %s (%s):\nType: %s",
		res.Driver.FullName, res.Driver.Company, taskType)
	a.sendAsync(ctx, "notify.new_task",
		tele.ChatID(a.cfg.Dispatch.ManagerGroupID), text, takeTaskMarkup(res.TaskID))
}

func (a *App) notifyDriver(ctx context.Context, driverID int64, text string) {
	a.sendAsync(ctx, "notify.driver", tele.ChatID(driverID), text)
}

func (a *App) notifyDeliveryUpdate(ctx context.Context, managerID int64, taskType, bol, trailer string) {
	text := fmt.Sprintf("📩 Task update:\nType: %s\nBOL: %s\nTrailer: %s",
		taskType, bol, trailer)
	a.sendAsync(ctx, "notify.delivery_update", tele.ChatID(managerID), text)
}

func (a *App) sendAsync(ctx context.Context, action string, to tele.Recipient, text string, opts ...interface{}) {
	if a.bot == nil || a.dispatcher == nil {
		logger.Warn(ctx, "bot", "notify.skip",
			slog.String("action", action),
			slog.String("reason", "runtime_not_ready"),
		)
		return
	}

	bot := a.bot
	err := a.dispatcher.Enqueue(ctx, action, func() error {
		_, sendErr := bot.Send(to, text, opts...)
		return sendErr
	})
	if err != nil {
		logger.Warn(ctx, "bot", "notify.drop",
			slog.String("action", action),
			slog.String("err", err.Error()),
		)
	}
}
