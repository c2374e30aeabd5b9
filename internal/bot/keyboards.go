package bot

import (
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/telegram/keyboard"
)

func (a *App) mainMenu() *tele.ReplyMarkup {
	l := a.cfg.Labels
	var rows [][]string
	for i := 0; i < len(l.TaskTypes); i += 2 {
		if i+1 < len(l.TaskTypes) {
			rows = append(rows, []string{l.TaskTypes[i], l.TaskTypes[i+1]})
		} else {
			rows = append(rows, []string{l.TaskTypes[i]})
		}
	}
	rows = append(rows,
		[]string{l.SendData, l.CheckStatus},
		[]string{l.Settings},
	)
	return keyboard.ReplyButtons(rows...)
}

func (a *App) settingsMenu() *tele.ReplyMarkup {
	l := a.cfg.Labels
	return keyboard.ReplyButtons(
		[]string{l.EditProfile},
		[]string{l.Back},
	)
}

func takeTaskMarkup(taskID int64) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "Take Task", Unique: cbTakeTask, Data: strconv.FormatInt(taskID, 10)},
	})
}

func completeTaskMarkup(taskID int64) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "Complete", Unique: cbFinishTask, Data: strconv.FormatInt(taskID, 10)},
	})
}
