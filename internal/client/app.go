package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/service"
	"github.com/MKhiriev/guest-nama/internal/workers"
	"github.com/MKhiriev/guest-nama/models"
)

const usage = `usage: guestnama-client [flags] <command> [command flags]

commands:
  login     -phone <phone> -password <password>
  signup    -name <name> -phone <phone> -password <password>
  logout
  whoami
  dashboard
  watch`

type App struct {
	services *service.ClientServices
	workers  config.ClientWorkers
	args     []string

	out    io.Writer
	logger *logger.Logger
}

// NewApp returns an App that runs the command in cfg.Args and prints its
// result to out.
func NewApp(services *service.ClientServices, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if len(cfg.Args) == 0 {
		return nil, fmt.Errorf("%w\n%s", ErrNoCommand, usage)
	}

	return &App{
		services: services,
		workers:  cfg.Workers,
		args:     cfg.Args,
		out:      out,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	command, args := a.args[0], a.args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	switch command {
	case "login":
		return a.login(ctx, args)
	case "signup":
		return a.signup(ctx, args)
	case "logout":
		a.services.SessionManager.Logout(ctx)
		fmt.Fprintln(a.out, "logged out")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "dashboard":
		return a.dashboard(ctx)
	case "watch":
		return a.watch(ctx)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	ok, err := a.services.SessionManager.Login(ctx, *phone, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if !ok {
		return ErrInvalidCredentials
	}

	return a.printSession()
}

func (a *App) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "display name")
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	ok, err := a.services.SessionManager.Signup(ctx, *name, *phone, *password)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if !ok {
		return ErrSignupRejected
	}

	return a.printSession()
}

func (a *App) whoami(ctx context.Context) error {
	if err := a.restore(ctx); err != nil {
		return err
	}
	return a.printSession()
}

func (a *App) dashboard(ctx context.Context) error {
	if err := a.restore(ctx); err != nil {
		return err
	}

	metrics, err := a.services.Dashboard.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}
	return a.printJSON(metrics)
}

// watch prints the dashboard and then every refreshed snapshot until ctx is
// cancelled or the storage server rejects the session.
func (a *App) watch(ctx context.Context) error {
	if err := a.dashboard(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	refresh := workers.NewRefreshWorker(a.services.Dashboard, a.workers.RefreshInterval, func(m models.DerivedMetrics) {
		if err := a.printJSON(m); err != nil {
			a.logger.Err(err).Msg("print metrics")
		}
	}, a.logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		workers.NewWorkers(refresh).Run(ctx)
	}()

	var err error
	select {
	case <-ctx.Done():
	case <-a.services.SessionManager.Invalidated():
		err = ErrSessionInvalidated
	}

	cancel()
	<-done
	return err
}

// restore loads the persisted session and fails when there is none.
func (a *App) restore(ctx context.Context) error {
	if err := a.services.SessionManager.Init(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !a.services.SessionManager.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

func (a *App) printSession() error {
	session, ok := a.services.SessionManager.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	return a.printJSON(session)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("print result: %w", err)
	}
	return nil
}
