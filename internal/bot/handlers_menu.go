package bot

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/Remphph/Track-bot/internal/telegram/helpers"
)

func (a *App) onStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if err := c.Send(msgWelcome, a.mainMenu()); err != nil {
		return err
	}

	if a.fsm.InProgress(c.Sender().ID) {
		return c.Send(msgFinishCurrent)
	}

	driver, err := a.drivers.Get(ctx, c.Sender().ID)
	if err != nil {
		_ = c.Send(msgInternalError)
		return err
	}
	if driver != nil {
		return c.Send(msgWelcomeBack, a.mainMenu())
	}
	return a.beginProfileDialog(c, modeRegister)
}

func (a *App) onCancel(c tele.Context) error {
	userID := c.Sender().ID
	if a.fsm.InProgress(userID) {
		a.fsm.Clear(userID)
		return c.Send(msgActionCanceled, a.mainMenu())
	}
	return c.Send(msgNoActiveAction, a.mainMenu())
}

func (a *App) onMenu(c tele.Context) error {
	return c.Send(msgMainMenu, a.mainMenu())
}

func (a *App) onBack(c tele.Context) error {
	return c.Send(msgMainMenu, a.mainMenu())
}

func (a *App) onSettings(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	driver, err := a.drivers.Get(ctx, c.Sender().ID)
	if err != nil {
		_ = c.Send(msgInternalError)
		return err
	}
	if driver == nil {
		return c.Send(msgRegisterFirst)
	}
	return c.Send(msgSelectAction, a.settingsMenu())
}
