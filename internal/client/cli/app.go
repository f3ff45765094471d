package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"thoughts/internal/client/api"
	"thoughts/internal/client/config"
	"thoughts/internal/client/dispatch"
	"thoughts/internal/client/models"
	"thoughts/internal/client/optimistic"
	"thoughts/internal/client/routes"
	"thoughts/internal/client/storage"
	"thoughts/internal/client/store"
	"thoughts/internal/client/ui"
	"thoughts/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the assembled client: stores, dispatcher, controllers and the
// terminal front end. One App drives one interactive session.
type App struct {
	config   *config.Config
	db       *sql.DB
	api      api.Client
	auth     *store.AuthStore
	profile  *store.ProfileStore
	dispatch *dispatch.Dispatcher
	likes    *optimistic.LikeController
	comments *optimistic.CommentController
	posts    *optimistic.PostController
	log      logging.Logger
	reader   *bufio.Reader

	// post currently opened with the "open" command; like and comment
	// commands act on it
	current *models.Post
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewText(os.Stderr, slog.LevelWarn)

	db, err := storage.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing session database: %w", err)
	}

	repo := storage.NewSQLiteRepository(db)
	auth := store.NewAuthStore(repo)
	if err := auth.RestoreSession(ctx); err != nil {
		log.Warn(ctx, "restoring session failed", "error", err)
	}

	profile := store.NewProfileStore()

	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, auth.Token, log)

	reader := bufio.NewReader(os.Stdin)
	notify := &ui.TerminalNotifier{W: os.Stdout}
	confirm := &ui.TerminalConfirmer{R: reader, W: os.Stdout}

	return &App{
		config:   cfg,
		db:       db,
		api:      client,
		auth:     auth,
		profile:  profile,
		dispatch: dispatch.New(client, auth, profile, notify, confirm, log),
		likes:    optimistic.NewLikeController(client, auth, log),
		comments: optimistic.NewCommentController(client, auth, confirm, log),
		posts:    optimistic.NewPostController(client, auth, confirm, log),
		log:      log,
		reader:   reader,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	printlnFn("Thoughts CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close detaches the controllers and releases the session database.
func (a *App) Close() {
	a.likes.Close()
	a.comments.Close()
	a.posts.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) isAdmin() bool {
	u := a.auth.Current()
	return u != nil && u.IsAdmin
}

// status renders the prompt suffix: the signed-in username, plus an
// admin marker.
func (a *App) status() string {
	u := a.auth.Current()
	if u == nil {
		return ""
	}
	s := u.Username
	if u.IsAdmin {
		s += " admin"
	}
	return "(" + s + ")"
}

// enter runs the navigation guard for the given class. When access is
// denied it tells the user where the client navigated instead and
// reports false; the command must not run.
func (a *App) enter(class routes.Class) bool {
	d := routes.Decide(a.auth.Current(), class)
	if d.Allow {
		return true
	}
	switch d.Redirect {
	case routes.NotFoundPath:
		printlnFn("Not found.")
	default:
		printlnFn("Redirected to home. Use 'help' to see available commands.")
	}
	return false
}
