package bot

import (
	"database/sql"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/models"
	tghelpers "github.com/Remphph/Track-bot/internal/telegram/helpers"
)

func (a *App) onCheckStatus(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	tasks, err := a.tasks.Recent(ctx, c.Sender().ID)
	if err != nil {
		_ = c.Send(msgInternalError)
		return err
	}
	if len(tasks) == 0 {
		return c.Send(msgNoTasks)
	}

	for _, task := range tasks {
		if err := c.Send(renderTaskStatus(task)); err != nil {
			return err
		}
	}
	return nil
}

func renderTaskStatus(task models.Task) string {
	emoji := "✅"
	if task.Status == models.TaskInProgress {
		emoji = "⏳"
	}
	return fmt.Sprintf("Task:\nType: %s\nStatus: %s %s\nBOL: %s\nTrailer: %s",
		task.TaskType, emoji, task.Status,
		valueOrNotProvided(task.BOLNumber),
		valueOrNotProvided(task.TrailerNumber))
}

func valueOrNotProvided(v sql.NullString) string {
	if v.Valid && v.String != "" {
		return v.String
	}
	return "Not provided"
}
