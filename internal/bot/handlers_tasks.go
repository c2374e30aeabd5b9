package bot

import (
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/service"
	"github.com/Remphph/Track-bot/internal/telegram/callbacks"
	tghelpers "github.com/Remphph/Track-bot/internal/telegram/helpers"
)

func (a *App) onCreateTask(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	taskType := strings.TrimSpace(c.Text())
	if strings.HasPrefix(taskType, "/") {
		// typed the raw command instead of pressing a menu button
		return c.Send(msgUseMenu, a.mainMenu())
	}

	res, err := a.tasks.Create(ctx, c.Sender().ID, taskType)
	switch {
	case errors.Is(err, service.ErrNotRegistered):
		return c.Send(msgRegisterFirst)
	case err != nil:
		_ = c.Send(msgInternalError)
		return err
	}

	a.notifyNewTask(ctx, res, taskType)
	return c.Send(msgTaskAccepted)
}

func (a *App) onTakeTask(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	taskID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgCallbackError})
	}

	res, err := a.tasks.Claim(ctx, taskID, c.Sender().ID)
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		_ = c.Respond()
		return c.Send(msgTaskNotFound)
	case errors.Is(err, service.ErrContentRejected):
		_ = c.Respond()
		return c.Send(msgTaskSpam)
	case errors.Is(err, service.ErrTaskUnavailable):
		_ = c.Respond()
		return c.Send(msgTaskTaken)
	case err != nil:
		_ = c.Respond(&tele.CallbackResponse{Text: msgCallbackError, ShowAlert: true})
		return err
	}

	managerName := senderName(c.Sender())
	text := fmt.Sprintf("📩 Task taken by %s:\nType: %s\nDriver: %s (%s)",
		managerName, res.Task.TaskType, res.Driver.FullName, res.Driver.Company)
	if err := c.Edit(text, completeTaskMarkup(taskID)); err != nil {
		return err
	}

	a.notifyDriver(ctx, res.Task.DriverID,
		fmt.Sprintf("Your task (%s) has been taken by %s!", res.Task.TaskType, managerName))
	return c.Respond(&tele.CallbackResponse{Text: msgTakeOK})
}

func (a *App) onFinishTask(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	taskID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgCallbackError})
	}

	res, err := a.tasks.Complete(ctx, taskID, c.Sender().ID)
	switch {
	case errors.Is(err, service.ErrNotTaskOwner):
		return c.Respond(&tele.CallbackResponse{Text: msgNotTaskOwner})
	case errors.Is(err, service.ErrTaskNotFound):
		_ = c.Respond()
		return c.Send(msgTaskNotFound)
	case errors.Is(err, service.ErrTaskUnavailable):
		_ = c.Respond()
		return c.Send(msgTaskTaken)
	case err != nil:
		_ = c.Respond(&tele.CallbackResponse{Text: msgCallbackError, ShowAlert: true})
		return err
	}

	managerName := senderName(c.Sender())
	text := fmt.Sprintf("📩 Task completed by %s:\nType: %s\nDriver: %s (%s)",
		managerName, res.Task.TaskType, res.Driver.FullName, res.Driver.Company)
	if err := c.Edit(text); err != nil {
		return err
	}

	a.notifyDriver(ctx, res.Task.DriverID,
		fmt.Sprintf("Your task (%s) has been completed by %s. Have a safe trip!",
			res.Task.TaskType, managerName))
	return c.Respond(&tele.CallbackResponse{Text: msgCompleteOK, ShowAlert: true})
}

func senderName(u *tele.User) string {
	if u == nil {
		return "manager"
	}
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		name = u.Username
	}
	if name == "" {
		name = "manager"
	}
	return name
}
