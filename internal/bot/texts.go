package bot

// User-facing message texts.
const (
	msgWelcome = "Welcome to our team!\n" +
		"We work 24/7 🕐\n" +
		"Let us know if you have any questions or need some help with ELD.\n" +
		"We are always glad to help you! 📲"
	msgWelcomeBack    = "Welcome back!"
	msgMainMenu       = "Main menu"
	msgSelectAction   = "Select an action:"
	msgRegisterFirst  = "Please register first!"
	msgFinishCurrent  = "Please complete the current action or type /cancel"
	msgActionCanceled = "Action cancelled"
	msgNoActiveAction = "No active actions"
	msgInternalError  = "An error occurred. Please try again later."
	msgUseMenu        = "Please use the menu to select an action."

	msgRegIntro       = "Registration:\n\nEnter company name:"
	msgEditIntro      = "Enter new company name:"
	msgCompanyEmpty   = "Company name cannot be empty."
	msgFullNameEmpty  = "Full name cannot be empty."
	msgPhoneInvalid   = "❌ Invalid phone format. Example: +71234567890"
	msgTruckEmpty     = "Truck number cannot be empty."
	msgRegDone        = "✅ Registration completed!"
	msgProfileUpdated = "Profile updated!"

	msgTaskAccepted = "We are working on your log book. Please wait."

	msgAskTaskID       = "Enter task number:"
	msgAskBOL          = "Enter BOL number:"
	msgAskTrailer      = "Enter trailer number:"
	msgTaskIDNotNumber = "Task number must be a number. Please try again."
	msgTaskNotYours    = "Task not found or not assigned to you."
	msgBOLInvalid      = "Invalid BOL format (must be 8-12 digits). Please try again."
	msgTrailerInvalid  = "Invalid trailer number. Please try again."
	msgDataSent        = "Data sent to manager!"
	msgDataAlreadySent = "Data for this task was already sent."

	msgNoTasks = "You have no active tasks."

	msgTaskNotFound  = "Task not found."
	msgTaskSpam      = "This task is not available."
	msgTaskTaken     = "Task is already taken or completed."
	msgTakeOK        = "Task taken!"
	msgCompleteOK    = "Task completed!"
	msgNotTaskOwner  = "You cannot complete someone else's task"
	msgCallbackError = "An error occurred"
)
