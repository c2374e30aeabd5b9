package bot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/content"
	"github.com/Remphph/Track-bot/internal/models"
	"github.com/Remphph/Track-bot/internal/service"
	"github.com/Remphph/Track-bot/internal/storage"
)

// apiStub stands in for the Bot API server and records outgoing message texts.
type apiStub struct {
	mu    sync.Mutex
	texts []string
}

func (s *apiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var payload map[string]interface{}
	_ = json.Unmarshal(body, &payload)
	if text, ok := payload["text"].(string); ok {
		s.mu.Lock()
		s.texts = append(s.texts, text)
		s.mu.Unlock()
	}
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"}}}`))
}

func (s *apiStub) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.texts) == 0 {
		return ""
	}
	return s.texts[len(s.texts)-1]
}

// dialogDriverStore is a minimal DriverStore for handler tests.
type dialogDriverStore struct {
	mu      sync.Mutex
	drivers map[int64]models.Driver
}

func newDialogDriverStore(registered ...int64) *dialogDriverStore {
	s := &dialogDriverStore{drivers: make(map[int64]models.Driver)}
	for _, id := range registered {
		s.drivers[id] = models.Driver{DriverID: id, FullName: "John Smith", Company: "Freight LLC"}
	}
	return s
}

func (s *dialogDriverStore) Get(_ context.Context, driverID int64) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drivers[driverID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *dialogDriverStore) Insert(_ context.Context, driverID int64, _ models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[driverID]; ok {
		return storage.ErrDuplicateDriver
	}
	s.drivers[driverID] = models.Driver{DriverID: driverID}
	return nil
}

func (s *dialogDriverStore) Update(_ context.Context, driverID int64, p models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.drivers[driverID]
	d.Company = p.Company
	d.FullName = p.FullName
	d.Phone = p.Phone
	d.TruckNumber = p.TruckNumber
	s.drivers[driverID] = d
	return nil
}

// newDialogApp wires the app against a stubbed Bot API so updates can be fed
// through the real route table.
func newDialogApp(t *testing.T, store service.DriverStore) (*App, *apiStub, *tele.Bot) {
	t.Helper()
	cfg := validAppConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	filter := content.NewFilter()
	app := New(cfg, service.NewDrivers(store), service.NewTasks(nil, nil, filter), filter)

	stub := &apiStub{}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	b, err := tele.NewBot(tele.Settings{
		Token:       "test",
		URL:         srv.URL,
		Offline:     true,
		Synchronous: true,
	})
	if err != nil {
		t.Fatalf("new bot: %v", err)
	}
	for _, r := range app.Routes() {
		b.Handle(r.Endpoint, r.Handler)
	}
	return app, stub, b
}

func textUpdate(userID int64, text string) tele.Update {
	return tele.Update{
		ID: 1,
		Message: &tele.Message{
			ID:     1,
			Text:   text,
			Sender: &tele.User{ID: userID},
			Chat:   &tele.Chat{ID: userID, Type: tele.ChatPrivate},
		},
	}
}

func TestDialogTriggersRefusedMidDialog(t *testing.T) {
	app, stub, b := newDialogApp(t, newDialogDriverStore(7))

	app.fsm.SetState(7, stateSendTaskID)
	b.ProcessUpdate(textUpdate(7, "/editprofile"))
	if got := app.fsm.GetState(7); got != stateSendTaskID {
		t.Fatalf("state after /editprofile = %q, want %q", got, stateSendTaskID)
	}
	if got := stub.last(); got != msgFinishCurrent {
		t.Fatalf("reply = %q, want %q", got, msgFinishCurrent)
	}

	app.fsm.Clear(7)
	app.fsm.SetState(7, stateProfileCompany)
	b.ProcessUpdate(textUpdate(7, "/senddata"))
	if got := app.fsm.GetState(7); got != stateProfileCompany {
		t.Fatalf("state after /senddata = %q, want %q", got, stateProfileCompany)
	}
	if got := stub.last(); got != msgFinishCurrent {
		t.Fatalf("reply = %q, want %q", got, msgFinishCurrent)
	}
}

func TestDialogTriggersStartWhenIdle(t *testing.T) {
	app, _, b := newDialogApp(t, newDialogDriverStore(7))

	b.ProcessUpdate(textUpdate(7, "/editprofile"))
	if got := app.fsm.GetState(7); got != stateProfileCompany {
		t.Fatalf("state after /editprofile = %q, want %q", got, stateProfileCompany)
	}

	app.fsm.Clear(7)
	b.ProcessUpdate(textUpdate(7, "/senddata"))
	if got := app.fsm.GetState(7); got != stateSendTaskID {
		t.Fatalf("state after /senddata = %q, want %q", got, stateSendTaskID)
	}
}

func TestDuplicateRegistrationGenericReply(t *testing.T) {
	app, stub, b := newDialogApp(t, newDialogDriverStore(7))

	app.fsm.SetState(7, stateProfileTruck)
	app.fsm.SetTemp(7, tmpProfileMode, modeRegister)
	app.fsm.SetTemp(7, tmpCompany, "Freight LLC")
	app.fsm.SetTemp(7, tmpFullName, "John Smith")
	app.fsm.SetTemp(7, tmpPhone, "+15551234567")

	b.ProcessUpdate(textUpdate(7, "TRK-100"))
	if app.fsm.InProgress(7) {
		t.Fatal("session not cleared after duplicate registration")
	}
	if got := stub.last(); got != msgInternalError {
		t.Fatalf("reply = %q, want %q", got, msgInternalError)
	}
}
