package bot

import (
	"errors"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/models"
	"github.com/Remphph/Track-bot/internal/service"
	tghelpers "github.com/Remphph/Track-bot/internal/telegram/helpers"
	"github.com/Remphph/Track-bot/internal/telegram/keyboard"
	"github.com/Remphph/Track-bot/internal/validate"
)

// beginProfileDialog starts the registration or edit dialog. Both run the
// same four-step machine; the mode picks the prompts and the final write.
func (a *App) beginProfileDialog(c tele.Context, mode string) error {
	userID := c.Sender().ID
	a.fsm.Clear(userID)
	a.fsm.SetTemp(userID, tmpProfileMode, mode)
	a.fsm.SetState(userID, stateProfileCompany)

	intro := msgRegIntro
	if mode == modeEdit {
		intro = msgEditIntro
	}
	return c.Send(intro, keyboard.RemoveKeyboard())
}

func (a *App) onEditProfile(c tele.Context) error {
	if a.fsm.InProgress(c.Sender().ID) {
		return c.Send(msgFinishCurrent)
	}

	ctx := tghelpers.BuildContext(c)
	driver, err := a.drivers.Get(ctx, c.Sender().ID)
	if err != nil {
		_ = c.Send(msgInternalError)
		return err
	}
	if driver == nil {
		return c.Send(msgRegisterFirst)
	}
	return a.beginProfileDialog(c, modeEdit)
}

func (a *App) profileMode(userID int64) string {
	mode, ok := a.fsm.GetTempString(userID, tmpProfileMode)
	if !ok {
		return modeRegister
	}
	return mode
}

func (a *App) profilePrompt(userID int64, register, edit string) string {
	if a.profileMode(userID) == modeEdit {
		return edit
	}
	return register
}

func (a *App) onProfileCompany(c tele.Context) error {
	userID := c.Sender().ID
	company := strings.TrimSpace(c.Text())
	if !validate.NonEmpty(company) {
		return c.Send(msgCompanyEmpty)
	}

	a.fsm.SetTemp(userID, tmpCompany, company)
	a.fsm.SetState(userID, stateProfileName)
	return c.Send(a.profilePrompt(userID, "Enter your full name:", "Enter new full name:"))
}

func (a *App) onProfileName(c tele.Context) error {
	userID := c.Sender().ID
	fullName := strings.TrimSpace(c.Text())
	if !validate.NonEmpty(fullName) {
		return c.Send(msgFullNameEmpty)
	}

	a.fsm.SetTemp(userID, tmpFullName, fullName)
	a.fsm.SetState(userID, stateProfilePhone)
	return c.Send(a.profilePrompt(userID,
		"Enter phone number (e.g., +71234567890):",
		"Enter new phone number:"))
}

func (a *App) onProfilePhone(c tele.Context) error {
	userID := c.Sender().ID
	phone := strings.TrimSpace(c.Text())
	if !validate.Phone(phone) {
		return c.Send(msgPhoneInvalid)
	}

	a.fsm.SetTemp(userID, tmpPhone, phone)
	a.fsm.SetState(userID, stateProfileTruck)
	return c.Send(a.profilePrompt(userID, "Enter truck number:", "Enter new truck number:"))
}

func (a *App) onProfileTruck(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	truck := strings.TrimSpace(c.Text())
	if !validate.NonEmpty(truck) {
		return c.Send(msgTruckEmpty)
	}

	company, _ := a.fsm.GetTempString(userID, tmpCompany)
	fullName, _ := a.fsm.GetTempString(userID, tmpFullName)
	phone, _ := a.fsm.GetTempString(userID, tmpPhone)
	profile := models.Profile{
		Company:     company,
		FullName:    fullName,
		Phone:       phone,
		TruckNumber: truck,
	}

	mode := a.profileMode(userID)
	var err error
	if mode == modeEdit {
		err = a.drivers.UpdateProfile(ctx, userID, profile)
	} else {
		err = a.drivers.Register(ctx, userID, profile)
	}

	switch {
	case errors.Is(err, service.ErrAlreadyRegistered):
		// Logged by the service; the user just gets the generic retry.
		a.fsm.Clear(userID)
		return c.Send(msgInternalError, a.mainMenu())
	case err != nil:
		_ = c.Send(msgInternalError)
		return err
	}

	a.fsm.Clear(userID)
	if mode == modeEdit {
		return c.Send(msgProfileUpdated, a.mainMenu())
	}
	return c.Send(msgRegDone, a.mainMenu())
}
