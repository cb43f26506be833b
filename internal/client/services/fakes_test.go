package services

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	clientpkg "github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/session"
	"github.com/eduhub/eduhub/internal/client/view"
)

// ---- local store ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := clientpkg.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore(t *testing.T) (*session.Store, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return session.NewStore(db, nil), db
}

var adminUser = &models.User{ID: "u1", Username: "admin", Name: "Site Admin"}

func loggedIn(t *testing.T) (*session.Store, *sql.DB) {
	t.Helper()
	s, db := newStore(t)
	require.NoError(t, s.Save(context.Background(), "tok", adminUser))
	return s, db
}

// ---- fake client ----

// fakeClient implements client.Client and counts every call.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int

	LoginToken string
	LoginUser  *models.User
	LoginErr   error

	VerifyUser *models.User
	VerifyErr  error

	ListItems map[string][]models.ContentItem
	ListErr   error

	CreateErr  error
	LastCreate models.NewContent

	UploadItem *models.ContentItem
	UploadErr  error
	LastUpload clientpkg.Upload
	LastToken  string

	DeleteErr error
	LastID    string

	Storage    models.StorageStatus
	StorageErr error

	DownloadBody string
	DownloadErr  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}, ListItems: map[string][]models.ContentItem{}}
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeClient) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	f.hit("login")
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeClient) Verify(ctx context.Context, token string) (*models.User, error) {
	f.hit("verify")
	return f.VerifyUser, f.VerifyErr
}

func (f *fakeClient) ListContent(ctx context.Context, q models.ContentQuery) ([]models.ContentItem, error) {
	f.hit("list")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.ListItems[q.Key()]
	if items == nil {
		items = []models.ContentItem{}
	}
	return items, nil
}

func (f *fakeClient) CreateContent(ctx context.Context, token string, c models.NewContent) error {
	f.hit("create")
	f.LastToken, f.LastCreate = token, c
	return f.CreateErr
}

func (f *fakeClient) UploadContent(ctx context.Context, token string, u clientpkg.Upload) (*models.ContentItem, error) {
	f.hit("upload")
	f.LastToken, f.LastUpload = token, u
	return f.UploadItem, f.UploadErr
}

func (f *fakeClient) DeleteContent(ctx context.Context, token, id string) error {
	f.hit("delete")
	f.LastToken, f.LastID = token, id
	return f.DeleteErr
}

func (f *fakeClient) StorageStatus(ctx context.Context, token string) (models.StorageStatus, error) {
	f.hit("storage")
	f.LastToken = token
	return f.Storage, f.StorageErr
}

func (f *fakeClient) Download(ctx context.Context, fileURL string, w io.Writer) (int64, error) {
	f.hit("download")
	if f.DownloadErr != nil {
		return 0, f.DownloadErr
	}
	n, err := io.WriteString(w, f.DownloadBody)
	return int64(n), err
}

var _ clientpkg.Client = (*fakeClient)(nil)

// ---- presentation fakes ----

type fakeSwitcher struct {
	mu          sync.Mutex
	admin       int
	guest       int
	adminActive bool
}

func (s *fakeSwitcher) ShowAdmin() {
	s.mu.Lock()
	s.admin++
	s.adminActive = true
	s.mu.Unlock()
}

func (s *fakeSwitcher) ShowGuest() {
	s.mu.Lock()
	s.guest++
	s.adminActive = false
	s.mu.Unlock()
}

type fakeRefresher struct {
	mu      sync.Mutex
	queries []models.ContentQuery
}

func (r *fakeRefresher) Refresh(ctx context.Context, q models.ContentQuery) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
}

type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (c *fakeConfirmer) Confirm(ctx context.Context, prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

type fixedTab struct{ tv *view.TabView }

func (f fixedTab) ActiveTab() *view.TabView { return f.tv }

// scheduled records delayed callbacks so tests can fire them on demand.
type scheduled struct {
	delays []time.Duration
	funcs  []func()
}

func (s *scheduled) after(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
}

func (s *scheduled) runAll() {
	funcs := s.funcs
	s.funcs = nil
	for _, f := range funcs {
		f()
	}
}
