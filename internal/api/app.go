package api

import (
	"context"
	"sync"

	"github.com/speedscore/roundtracker/internal"
	"github.com/speedscore/roundtracker/internal/dialog"
	"github.com/speedscore/roundtracker/internal/notify"
	"github.com/speedscore/roundtracker/internal/store"
	"github.com/speedscore/roundtracker/internal/table"
)

// Account bundles everything one logged-in account owns: its session,
// its rendered table, and its log-round dialog. The mutex is the
// serialization point standing in for the single UI thread; handlers
// hold it for the duration of a request.
type Account struct {
	mu       sync.Mutex
	Session  *store.Session
	Rows     *table.MemoryRows
	Renderer *table.Renderer
	Dialog   *dialog.Controller
	Notifier *notify.Recorder
}

func (a *Account) Lock()   { a.mu.Lock() }
func (a *Account) Unlock() { a.mu.Unlock() }

// App holds cross-request server state: one Account per authenticated
// email, opened lazily on first use.
type App struct {
	logger   internal.Logger
	repo     store.UserDataRepository
	mu       sync.Mutex
	accounts map[string]*Account
}

func NewApp(repo store.UserDataRepository, logger internal.Logger) *App {
	return &App{
		logger:   logger,
		repo:     repo,
		accounts: make(map[string]*Account),
	}
}

func (a *App) Logger() internal.Logger { return a.logger }

// Account returns the session bundle for an email, opening it on first
// access and rendering the stored rounds into the table.
func (a *App) Account(ctx context.Context, email string) (*Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if acct, ok := a.accounts[email]; ok {
		return acct, nil
	}
	session, err := store.Open(ctx, a.repo, email, a.logger)
	if err != nil {
		return nil, err
	}
	rows := table.NewMemoryRows()
	renderer := table.NewRenderer(rows)
	renderer.Render(session.Rounds())
	notifier := &notify.Recorder{}
	acct := &Account{
		Session:  session,
		Rows:     rows,
		Renderer: renderer,
		Dialog:   dialog.NewController(session, renderer, notifier, a.logger),
		Notifier: notifier,
	}
	a.accounts[email] = acct
	return acct, nil
}

// CloseAccount tears a session down at logout. The durable copy stays.
func (a *App) CloseAccount(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if acct, ok := a.accounts[email]; ok {
		acct.Session.Close()
		delete(a.accounts, email)
	}
}
