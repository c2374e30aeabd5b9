package bot

// LabelsConfig holds the menu button texts. Task type labels double as the
// task_type value stored with each task, so renaming a label changes what
// managers see in the group post.
type LabelsConfig struct {
	TaskTypes   []string `yaml:"task_types"`
	SendData    string   `yaml:"send_data"`
	CheckStatus string   `yaml:"check_status"`
	Settings    string   `yaml:"settings"`
	EditProfile string   `yaml:"edit_profile"`
	Back        string   `yaml:"back"`
}

func defaultTaskTypes() []string {
	return []string{
		"New Shift", "New Cycle",
		"Reset Break", "Add Time",
		"Check", "Load",
		"Contact Me",
	}
}

func applyLabelDefaults(l *LabelsConfig) {
	if len(l.TaskTypes) == 0 {
		l.TaskTypes = defaultTaskTypes()
	}
	if l.SendData == "" {
		l.SendData = "Send Data"
	}
	if l.CheckStatus == "" {
		l.CheckStatus = "Check Status"
	}
	if l.Settings == "" {
		l.Settings = "⚙️ Settings"
	}
	if l.EditProfile == "" {
		l.EditProfile = "Edit Profile"
	}
	if l.Back == "" {
		l.Back = "Back"
	}
}
