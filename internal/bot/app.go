package bot

import (
	"context"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/content"
	"github.com/Remphph/Track-bot/internal/logger"
	"github.com/Remphph/Track-bot/internal/service"
	tg "github.com/Remphph/Track-bot/internal/telegram"
	"github.com/Remphph/Track-bot/internal/telegram/router"
	tgsender "github.com/Remphph/Track-bot/internal/telegram/sender"
	"github.com/Remphph/Track-bot/internal/telegram/state"
)

// App holds the wired dispatch bot: services, dialog sessions, and the
// handler registry. Build it with New, then hand Routes and OnStart to
// RunTelegram.
type App struct {
	cfg     *Config
	drivers *service.Drivers
	tasks   *service.Tasks
	filter  *content.Filter
	fsm     *state.MemoryManager
	reg     *tg.Registry

	bot        *tele.Bot
	dispatcher *tgsender.Dispatcher
}

// New builds the application and registers every command, callback, and
// dialog state handler.
func New(cfg *Config, drivers *service.Drivers, tasks *service.Tasks, filter *content.Filter) *App {
	a := &App{
		cfg:     cfg,
		drivers: drivers,
		tasks:   tasks,
		filter:  filter,
		fsm:     state.NewMemoryManager(time.Duration(cfg.Session.TTLMinutes) * time.Minute),
		reg:     tg.NewRegistry(),
	}
	a.wire()
	return a
}

// Registry exposes the handler registry for RunTelegram.
func (a *App) Registry() *tg.Registry { return a.reg }

func (a *App) wire() {
	l := a.cfg.Labels

	a.reg.RegisterCommand("/start", tg.Command{
		Handler:     a.onStart,
		Description: "Start the bot",
	})
	a.reg.RegisterCommand("/menu", tg.Command{
		Handler:     a.onMenu,
		Description: "Show the main menu",
	})
	a.reg.RegisterCommand("/cancel", tg.Command{
		Handler:     a.onCancel,
		Description: "Cancel the current action",
	})

	a.reg.RegisterCommand("/task", tg.Command{
		Handler:     a.onCreateTask,
		Description: "Create a task",
		Hidden:      true,
		Aliases:     l.TaskTypes,
	})
	a.reg.RegisterCommand("/senddata", tg.Command{
		Handler:     a.onSendData,
		Description: "Send delivery data",
		Hidden:      true,
		Aliases:     []string{l.SendData},
	})
	a.reg.RegisterCommand("/status", tg.Command{
		Handler:     a.onCheckStatus,
		Description: "Show recent tasks",
		Hidden:      true,
		Aliases:     []string{l.CheckStatus},
	})
	a.reg.RegisterCommand("/settings", tg.Command{
		Handler:     a.onSettings,
		Description: "Open settings",
		Hidden:      true,
		Aliases:     []string{l.Settings},
	})
	a.reg.RegisterCommand("/editprofile", tg.Command{
		Handler:     a.onEditProfile,
		Description: "Edit the driver profile",
		Hidden:      true,
		Aliases:     []string{l.EditProfile},
	})
	a.reg.RegisterCommand("/back", tg.Command{
		Handler:     a.onBack,
		Description: "Back to the main menu",
		Hidden:      true,
		Aliases:     []string{l.Back},
	})

	_ = a.reg.RegisterCallback(cbTakeTask, a.onTakeTask)
	_ = a.reg.RegisterCallback(cbFinishTask, a.onFinishTask)

	a.fsm.RegisterHandler(stateProfileCompany, a.onProfileCompany)
	a.fsm.RegisterHandler(stateProfileName, a.onProfileName)
	a.fsm.RegisterHandler(stateProfilePhone, a.onProfilePhone)
	a.fsm.RegisterHandler(stateProfileTruck, a.onProfileTruck)
	a.fsm.RegisterHandler(stateSendTaskID, a.onSendTaskID)
	a.fsm.RegisterHandler(stateSendBOL, a.onSendBOL)
	a.fsm.RegisterHandler(stateSendTrailer, a.onSendTrailer)

	a.reg.SetTextFallback(a.onUnknownText)
}

// Routes returns every bot route: slash commands, the text router with FSM
// priority, and the callback router.
func (a *App) Routes() []tg.Route {
	routes := router.CommandRoutes(a.reg)
	routes = append(routes, router.TextRoutes(a.fsm, a.reg)...)
	routes = append(routes, router.CallbackRoute(a.reg))
	return routes
}

// OnStart captures runtime components and starts the session janitor.
func (a *App) OnStart(ctx context.Context, rt tg.Runtime) error {
	a.bot = rt.Bot
	a.dispatcher = rt.Dispatcher
	go a.fsm.Run(ctx, time.Minute)

	logger.Info(ctx, "bot", "ready",
		slog.Int64("manager_group_id", a.cfg.Dispatch.ManagerGroupID),
		slog.Int("task_types", len(a.cfg.Labels.TaskTypes)),
		slog.Int("session_ttl_minutes", a.cfg.Session.TTLMinutes),
	)
	return nil
}

// OnStop reports outbound delivery failures accumulated during the run.
func (a *App) OnStop(ctx context.Context, rt tg.Runtime) error {
	if rt.Dispatcher != nil {
		if n := rt.Dispatcher.ErrorCount(); n > 0 {
			logger.Warn(ctx, "bot", "stop",
				slog.Uint64("send_failures", n),
			)
		}
	}
	return nil
}
