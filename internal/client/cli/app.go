package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/eduhub/eduhub/internal/client/catalog"
	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/config"
	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/repositories/uploads"
	"github.com/eduhub/eduhub/internal/client/services"
	"github.com/eduhub/eduhub/internal/client/session"
	"github.com/eduhub/eduhub/internal/client/view"
	"github.com/eduhub/eduhub/internal/logging"
)

// App is the terminal front end. It owns the navigation state (semester,
// subject, active tab) and presents service results to the user.
type App struct {
	config  *config.Config
	db      *sql.DB
	catalog *catalog.Catalog
	store   *session.Store
	screen  *view.Screen
	journal uploads.Repository

	authService     services.AuthService
	contentLoader   services.ContentLoader
	uploader        services.Uploader
	deleter         services.Deleter
	storageService  services.StorageService
	quickAccess     services.QuickAccess
	downloadService services.Downloader

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	mu       sync.Mutex
	semester int
	subject  string
	tab      *view.TabView
	upload   *models.UploadDraft
}

// NewApp opens the local database and wires every service.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(c, db, apiClient, logger)
	return a, nil
}

// newApp wires the services around an already opened db and API client.
func newApp(c *config.Config, db *sql.DB, apiClient client.Client, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	repos := client.NewRepositories(db)
	cat := catalog.Default()
	store := session.NewStore(db, logger)
	screen := view.NewNavScreen()
	switcher := view.NewSwitcher(screen, logger)

	a := &App{
		config:  c,
		db:      db,
		catalog: cat,
		store:   store,
		screen:  screen,
		journal: repos.Uploads,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}

	a.authService = services.NewAuthService(apiClient, store, switcher, logger)
	a.contentLoader = services.NewContentLoader(apiClient, repos.ContentCache, cat, store, logger)
	a.uploader = services.NewUploader(apiClient, store, switcher, repos.Uploads, a, services.UploaderConfig{
		StatusResetDelay: c.StatusResetDelay,
		RefreshDelay:     c.RefreshDelay,
	}, logger)
	a.deleter = services.NewDeleter(apiClient, store, a.contentLoader, a, a, a, logger)
	a.storageService = services.NewStorageService(apiClient, store, logger)
	a.quickAccess = services.NewQuickAccess(a.contentLoader, cat)
	a.downloadService = services.NewDownloader(apiClient, c.DownloadDir, logger)
	return a
}

// Run restores the admin session and blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to EduHub CLI (type 'help' for commands)")
	if _, err := a.authService.Restore(ctx); err != nil {
		log.Printf("session restore: %s", err.Error())
	}
	a.screen.Render(a.out)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.getStatus, a.reader)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		printlnFn("Bye!")
	}
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("error closing database: %s", err.Error())
		}
	}
}

func (a *App) isAdmin() bool {
	return a.authService.IsAdmin()
}

// getStatus renders the prompt context, e.g. "(admin) sem 1/physics/resources".
func (a *App) getStatus() string {
	mode := services.ModeGuest
	if a.isAdmin() {
		mode = services.ModeAdmin
	}
	s := fmt.Sprintf("(%s)", mode)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.semester != 0 {
		s += fmt.Sprintf(" sem %d", a.semester)
	}
	if a.subject != "" {
		s += "/" + a.subject
	}
	if a.tab != nil {
		s += "/" + string(a.tab.Tab())
	}
	return s
}

// ActiveTab returns the tab currently on screen, or nil.
func (a *App) ActiveTab() *view.TabView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tab
}

// Refresh reloads the active tab when it shows q. It may run on a timer
// goroutine after an upload.
func (a *App) Refresh(ctx context.Context, q models.ContentQuery) {
	tab := a.ActiveTab()
	if tab == nil || tab.Query() != q {
		a.log.Debug(ctx, "refresh skipped, tab not active", "query", q.Key())
		return
	}
	tab.SetItems(a.contentLoader.Load(ctx, q))
	fmt.Fprintf(a.out, "\n%s refreshed:\n", q.Category.Label())
	tab.Render(a.out, a.now())
}

// Confirm asks a yes/no question on the terminal.
func (a *App) Confirm(ctx context.Context, prompt string) bool {
	return getConfirm(a.reader, prompt, a.out)
}

// draft returns the upload widget of the tab showing q. Only the active
// tab has one; a widget bound to another query is replaced.
func (a *App) draft(q models.ContentQuery) *models.UploadDraft {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.upload == nil || a.tab == nil || a.tab.Query() != q {
		a.upload = models.NewUploadDraft(q.Category)
	}
	return a.upload
}

func (a *App) location() (int, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.semester, a.subject
}
