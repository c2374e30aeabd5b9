package bot

import (
	"database/sql"
	"strings"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/content"
	"github.com/Remphph/Track-bot/internal/models"
	"github.com/Remphph/Track-bot/internal/service"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := validAppConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	filter := content.NewFilter()
	drivers := service.NewDrivers(nil)
	tasks := service.NewTasks(nil, nil, filter)
	return New(cfg, drivers, tasks, filter)
}

func TestWireCommands(t *testing.T) {
	app := newTestApp(t)
	reg := app.Registry()

	visible := reg.ListCommands(true)
	var names []string
	for _, cmd := range visible {
		names = append(names, cmd.Text)
	}
	want := []string{"/cancel", "/menu", "/start"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("visible commands = %v, want %v", names, want)
	}

	for _, label := range app.cfg.Labels.TaskTypes {
		key, _, ok := reg.LookupCommand(label)
		if !ok || key != "/task" {
			t.Fatalf("label %q resolves to %q (%v)", label, key, ok)
		}
	}
	for label, wantKey := range map[string]string{
		"Send Data":    "/senddata",
		"Check Status": "/status",
		"⚙️ Settings":  "/settings",
		"Edit Profile": "/editprofile",
		"Back":         "/back",
	} {
		key, _, ok := reg.LookupCommand(label)
		if !ok || key != wantKey {
			t.Fatalf("label %q resolves to %q (%v), want %q", label, key, ok, wantKey)
		}
	}

	if _, _, ok := reg.LookupCommand("random text"); ok {
		t.Fatal("unknown text resolved to a command")
	}
}

func TestWireCallbacks(t *testing.T) {
	app := newTestApp(t)
	reg := app.Registry()

	for _, key := range []string{cbTakeTask, cbFinishTask} {
		if _, ok := reg.GetCallback(key); !ok {
			t.Fatalf("callback %q not registered", key)
		}
	}
	if got := len(reg.ListCallbacks()); got != 2 {
		t.Fatalf("callbacks = %d", got)
	}
}

func TestRoutesCoverEndpoints(t *testing.T) {
	app := newTestApp(t)
	routes := app.Routes()

	endpoints := make(map[any]bool)
	for _, r := range routes {
		if r.Handler == nil {
			t.Fatalf("route %v has nil handler", r.Endpoint)
		}
		endpoints[r.Endpoint] = true
	}
	for _, want := range []any{"/start", "/cancel", "/menu", "/task", "/senddata", "/status", "/settings", "/editprofile", "/back"} {
		if !endpoints[want] {
			t.Fatalf("no route for %v", want)
		}
	}
}

func TestMainMenuLayout(t *testing.T) {
	app := newTestApp(t)
	menu := app.mainMenu()

	rows := menu.ReplyKeyboard
	// 7 task types in pairs -> 4 rows, plus data/status row and settings row
	if len(rows) != 6 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][0].Text != "New Shift" || rows[0][1].Text != "New Cycle" {
		t.Fatalf("first row = %+v", rows[0])
	}
	if rows[3][0].Text != "Contact Me" || len(rows[3]) != 1 {
		t.Fatalf("last task row = %+v", rows[3])
	}
	if rows[4][0].Text != "Send Data" || rows[4][1].Text != "Check Status" {
		t.Fatalf("data row = %+v", rows[4])
	}
	if rows[5][0].Text != "⚙️ Settings" {
		t.Fatalf("settings row = %+v", rows[5])
	}
	if !menu.ResizeKeyboard {
		t.Fatal("keyboard not resizable")
	}
}

func TestSettingsMenuLayout(t *testing.T) {
	app := newTestApp(t)
	menu := app.settingsMenu()

	rows := menu.ReplyKeyboard
	if len(rows) != 2 || rows[0][0].Text != "Edit Profile" || rows[1][0].Text != "Back" {
		t.Fatalf("settings menu = %+v", rows)
	}
}

func TestTakeTaskMarkup(t *testing.T) {
	markup := takeTaskMarkup(42)
	rows := markup.InlineKeyboard
	if len(rows) != 1 || len(rows[0]) != 1 {
		t.Fatalf("markup = %+v", rows)
	}
	btn := rows[0][0]
	if btn.Text != "Take Task" {
		t.Fatalf("text = %q", btn.Text)
	}
	if btn.Unique != cbTakeTask {
		t.Fatalf("unique = %q", btn.Unique)
	}
	if btn.Data != "42" {
		t.Fatalf("data = %q", btn.Data)
	}
}

func TestRenderTaskStatus(t *testing.T) {
	task := models.Task{
		TaskType: "Load",
		Status:   models.TaskInProgress,
	}
	got := renderTaskStatus(task)
	for _, want := range []string{"Type: Load", "⏳ in_progress", "BOL: Not provided", "Trailer: Not provided"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}

	task.Status = models.TaskCompleted
	task.BOLNumber = sql.NullString{String: "12345678", Valid: true}
	task.TrailerNumber = sql.NullString{String: "TRL-42", Valid: true}
	got = renderTaskStatus(task)
	for _, want := range []string{"✅ completed", "BOL: 12345678", "Trailer: TRL-42"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestSenderName(t *testing.T) {
	if got := senderName(nil); got != "manager" {
		t.Fatalf("nil sender = %q", got)
	}
	if got := senderName(&tele.User{FirstName: "Jane", LastName: "Doe"}); got != "Jane Doe" {
		t.Fatalf("full name = %q", got)
	}
	if got := senderName(&tele.User{FirstName: "Jane"}); got != "Jane" {
		t.Fatalf("first name only = %q", got)
	}
	if got := senderName(&tele.User{Username: "jdoe"}); got != "jdoe" {
		t.Fatalf("username fallback = %q", got)
	}
}
