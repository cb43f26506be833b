package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/config"
	"github.com/eduhub/eduhub/internal/client/models"
)

// fakeBackend is an in-memory EduHub API.
type fakeBackend struct {
	mu      sync.Mutex
	items   []models.ContentItem
	seq     int
	files   map[string]string
	drive   bool
	revoked bool
	deletes []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{files: map[string]string{}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) seed(items ...models.ContentItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, items...)
}

func (b *fakeBackend) list() []models.ContentItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.ContentItem(nil), b.items...)
}

func (b *fakeBackend) deleted() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.deletes...)
}

func (b *fakeBackend) authorized(req *http.Request) bool {
	return req.Header.Get("Authorization") == "Bearer tok"
}

func (b *fakeBackend) router() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/admin/login", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true, "token": "tok",
			"user": map[string]any{"username": body["username"], "name": "Site Admin"},
		})
	})
	r.Get("/api/admin/verify", func(w http.ResponseWriter, req *http.Request) {
		if !b.authorized(req) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
			return
		}
		b.mu.Lock()
		revoked := b.revoked
		b.mu.Unlock()
		if revoked {
			writeJSON(w, http.StatusForbidden, map[string]any{"success": false, "message": "Invalid token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": map[string]any{"username": "root"}})
	})
	r.Get("/api/content", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		b.mu.Lock()
		defer b.mu.Unlock()
		out := []models.ContentItem{}
		for _, it := range b.items {
			if s := q.Get("semester"); s != "" && s != strconv.Itoa(it.Semester) {
				continue
			}
			if s := q.Get("subject"); s != "" && s != it.Subject {
				continue
			}
			if s := q.Get("category"); s != "" && s != string(it.Category) {
				continue
			}
			out = append(out, it)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": out})
	})
	r.Post("/api/content/upload", func(w http.ResponseWriter, req *http.Request) {
		if !b.authorized(req) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
			return
		}
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
			return
		}
		f, hdr, err := req.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "no file"})
			return
		}
		data, _ := io.ReadAll(f)
		sem, _ := strconv.Atoi(req.FormValue("semester"))

		b.mu.Lock()
		b.seq++
		it := models.ContentItem{
			ID:               fmt.Sprintf("c%d", b.seq),
			Semester:         sem,
			Subject:          req.FormValue("subject"),
			Category:         models.Category(req.FormValue("category")),
			Title:            req.FormValue("title"),
			Description:      req.FormValue("description"),
			Type:             req.FormValue("type"),
			Size:             models.FormatSize(int64(len(data))),
			CreatedAt:        time.Now(),
			FileURL:          "/files/" + hdr.Filename,
			OriginalFileName: hdr.Filename,
		}
		b.items = append(b.items, it)
		b.files[hdr.Filename] = string(data)
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": it})
	})
	r.Post("/api/content", func(w http.ResponseWriter, req *http.Request) {
		if !b.authorized(req) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
			return
		}
		var nc models.NewContent
		_ = json.NewDecoder(req.Body).Decode(&nc)
		b.mu.Lock()
		b.seq++
		b.items = append(b.items, models.ContentItem{
			ID: fmt.Sprintf("c%d", b.seq), Semester: nc.Semester, Subject: nc.Subject, Category: nc.Category,
			Title: nc.Title, Description: nc.Description, Type: nc.Type, Size: nc.Size,
		})
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"success": true})
	})
	r.Delete("/api/content/{id}", func(w http.ResponseWriter, req *http.Request) {
		if !b.authorized(req) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
			return
		}
		id := chi.URLParam(req, "id")
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, it := range b.items {
			if it.ID == id {
				b.items = append(b.items[:i], b.items[i+1:]...)
				b.deletes = append(b.deletes, id)
				writeJSON(w, http.StatusOK, map[string]any{"success": true})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Content not found"})
	})
	r.Get("/api/api/storage-status", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"googleDriveEnabled": b.drive})
	})
	r.Get("/files/{name}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		body, ok := b.files[chi.URLParam(req, "name")]
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, req)
			return
		}
		_, _ = io.WriteString(w, body)
	})
	return r
}

// newTestApp wires a real App against be. Timers are pushed far out so
// delayed refreshes never race the test's output buffer.
func newTestApp(t *testing.T, be *fakeBackend) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(be.router())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL + "/api"
	cfg.DatabasePath = filepath.Join(dir, "cli.db")
	cfg.DownloadDir = filepath.Join(dir, "download")
	cfg.RequestTimeout = 2 * time.Second
	cfg.StatusResetDelay = time.Hour
	cfg.RefreshDelay = time.Hour

	db, err := client.InitDatabase(context.Background(), cfg.DatabasePath)
	require.NoError(t, err)
	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, nil)
	require.NoError(t, err)

	a := newApp(cfg, db, api, nil)
	t.Cleanup(a.Close)

	var out bytes.Buffer
	a.out = &out
	a.input("")
	return a, &out
}

func (b *fakeBackend) revoke() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked = true
}

// input replaces the terminal with scripted lines.
func (a *App) input(lines ...string) {
	a.reader = readerFromLines(lines...)
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	origRead, origTerm := readPassword, isTerminal
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTerm })
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}
