package bot

import "github.com/Remphph/Track-bot/internal/telegram/state"

// Dialog states. Registration and profile editing share one machine; the
// profileMode temp key selects the wording and the final write.
const (
	stateProfileCompany state.State = "profile:company"
	stateProfileName    state.State = "profile:full_name"
	stateProfilePhone   state.State = "profile:phone"
	stateProfileTruck   state.State = "profile:truck"

	stateSendTaskID  state.State = "delivery:task_id"
	stateSendBOL     state.State = "delivery:bol"
	stateSendTrailer state.State = "delivery:trailer"
)

// Session temp keys.
const (
	tmpProfileMode = "profile_mode"
	tmpCompany     = "company"
	tmpFullName    = "full_name"
	tmpPhone       = "phone"
	tmpTaskID      = "task_id"
	tmpBOL         = "bol"
)

// profileMode values.
const (
	modeRegister = "register"
	modeEdit     = "edit"
)

// Callback keys.
const (
	cbTakeTask   = "take_task"
	cbFinishTask = "finish_task"
)
