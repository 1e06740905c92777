package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/growlog/internal/buildinfo"
	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/config"
	"github.com/dmitrijs2005/growlog/internal/client/identity"
	"github.com/dmitrijs2005/growlog/internal/client/securestore"
	"github.com/dmitrijs2005/growlog/internal/client/services"
	"github.com/dmitrijs2005/growlog/internal/client/session"
	"github.com/dmitrijs2005/growlog/internal/common"
	"github.com/dmitrijs2005/growlog/internal/logging"
)

// Services bundles everything the REPL commands call into.
type Services struct {
	Auth     services.AuthService
	Diary    services.DiaryService
	Habits   services.HabitService
	Goals    services.GoalService
	Todos    services.TodoService
	Messages services.MessageService
}

type App struct {
	session  *session.Store
	services Services
	log      logging.Logger

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	pageSize    int

	feeds map[string]feed
	db    *sql.DB
}

// NewApp wires local storage, the session, the API client and the services
// described by c. Close releases what it opened.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	key, err := securestore.LoadOrCreateKey(c.DeviceKeyPath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error loading device key: %w", err)
	}
	storage, err := securestore.New(db, key)
	common.WipeByteArray(key)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sess := session.NewStore(storage, log)

	api, err := client.NewAPIClient(c.APIBaseURL, c.RequestTimeout, sess,
		client.WithLogger(log),
		client.WithUserAgent("growlog-cli/"+buildinfo.Version()))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	provider := identity.NewGoogleProvider(c.Google, identity.WithLogger(log))

	svc := Services{
		Auth:     services.NewAuthService(provider, api, sess, log),
		Diary:    services.NewDiaryService(api),
		Habits:   services.NewHabitService(api),
		Goals:    services.NewGoalService(api),
		Todos:    services.NewTodoService(api),
		Messages: services.NewMessageService(api),
	}

	a := newApp(sess, svc, log, os.Stdin, os.Stdout, Interactive(os.Stdin))
	a.db = db
	return a, nil
}

func newApp(sess *session.Store, svc Services, log logging.Logger, in io.Reader, out io.Writer, interactive bool) *App {
	a := &App{
		session:     sess,
		services:    svc,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		pageSize:    10,
	}
	a.feeds = a.buildFeeds()

	// Loaded pages belong to the previous user.
	sess.OnChange(func(st session.State) {
		if st == session.StateAnonymous {
			a.resetFeeds()
		}
	})
	return a
}

// Run restores the persisted session and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to growlog (type 'help' for commands)")

	if a.session.Restore(ctx) == session.StateAuthenticated {
		cur, _ := a.session.Current()
		fmt.Fprintf(a.out, "Welcome back, %s.\n", displayName(cur.User.Name, cur.User.Email))
		a.onboardingHint(ctx)
	} else {
		fmt.Fprintln(a.out, "You are not signed in. Type 'login' to sign in with Google.")
	}

	runREPL(ctx, a, a.status, a.reader, a.out, a.interactive)
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	cur, ok := a.session.Current()
	if !ok {
		return "(anonymous)"
	}
	return "(" + cur.User.Email + ")"
}

func (a *App) onboardingHint(ctx context.Context) {
	if !a.session.OnboardingComplete(ctx) {
		fmt.Fprintln(a.out, "New here? Type 'onboard' for a short tour.")
	}
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
