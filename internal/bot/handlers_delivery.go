package bot

import (
	"errors"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/service"
	tghelpers "github.com/Remphph/Track-bot/internal/telegram/helpers"
	"github.com/Remphph/Track-bot/internal/validate"
)

func (a *App) onSendData(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	if a.fsm.InProgress(userID) {
		return c.Send(msgFinishCurrent)
	}

	driver, err := a.drivers.Get(ctx, userID)
	if err != nil {
		_ = c.Send(msgInternalError)
		return err
	}
	if driver == nil {
		return c.Send(msgRegisterFirst)
	}

	a.fsm.Clear(userID)
	a.fsm.SetState(userID, stateSendTaskID)
	return c.Send(msgAskTaskID)
}

func (a *App) onSendTaskID(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	taskID, ok := validate.TaskID(strings.TrimSpace(c.Text()))
	if !ok {
		return c.Send(msgTaskIDNotNumber)
	}

	_, err := a.tasks.ResolveActive(ctx, taskID, userID)
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		return c.Send(msgTaskNotYours)
	case errors.Is(err, service.ErrDeliverySet):
		return c.Send(msgDataAlreadySent)
	case err != nil:
		_ = c.Send(msgInternalError)
		return err
	}

	a.fsm.SetTemp(userID, tmpTaskID, taskID)
	a.fsm.SetState(userID, stateSendBOL)
	return c.Send(msgAskBOL)
}

func (a *App) onSendBOL(c tele.Context) error {
	userID := c.Sender().ID

	bol := strings.TrimSpace(c.Text())
	if !validate.BOL(bol) {
		return c.Send(msgBOLInvalid)
	}

	a.fsm.SetTemp(userID, tmpBOL, bol)
	a.fsm.SetState(userID, stateSendTrailer)
	return c.Send(msgAskTrailer)
}

func (a *App) onSendTrailer(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	trailer := strings.TrimSpace(c.Text())
	taskID, _ := a.fsm.GetTempInt64(userID, tmpTaskID)
	bol, _ := a.fsm.GetTempString(userID, tmpBOL)

	task, err := a.tasks.SubmitDelivery(ctx, taskID, userID, bol, trailer)
	switch {
	case errors.Is(err, service.ErrContentRejected):
		return c.Send(msgTrailerInvalid)
	case errors.Is(err, service.ErrTaskNotFound):
		a.fsm.Clear(userID)
		return c.Send(msgTaskNotYours, a.mainMenu())
	case errors.Is(err, service.ErrDeliverySet):
		a.fsm.Clear(userID)
		return c.Send(msgDataAlreadySent, a.mainMenu())
	case err != nil:
		_ = c.Send(msgInternalError)
		return err
	}

	a.fsm.Clear(userID)
	if err := c.Send(msgDataSent, a.mainMenu()); err != nil {
		return err
	}

	if task.ManagerID.Valid {
		a.notifyDeliveryUpdate(ctx, task.ManagerID.Int64, task.TaskType, bol, trailer)
	}
	return nil
}
