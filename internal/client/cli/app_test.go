package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/view"
)

func login(t *testing.T, a *App) {
	t.Helper()
	stubPassword(t, "secret")
	a.input("root")
	require.NoError(t, a.Login(context.Background()))
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestApp_StartsAsGuest(t *testing.T) {
	a, _ := newTestApp(t, newFakeBackend())

	_, err := a.authService.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "(guest)", a.getStatus())
	assert.Equal(t, []string{view.GuestNavRegion}, a.screen.VisibleIDs())
	assert.NotNil(t, a.log, "nil logger falls back to discard")
}

func TestApp_LoginRestoresOnRestart(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend())
	login(t, a)

	assert.Contains(t, out.String(), "Logged in as Site Admin")
	assert.Contains(t, out.String(), "Admin mode")
	assert.Equal(t, "(admin)", a.getStatus())

	// A fresh restore over the same database keeps the admin session.
	a.store.ClearInMemory()
	_, err := a.authService.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, a.isAdmin())
	assert.Equal(t, []string{view.AdminNavRegion}, a.screen.VisibleIDs())
}

func TestApp_RevokedTokenIsClearedOnRestart(t *testing.T) {
	be := newFakeBackend()
	a, _ := newTestApp(t, be)
	login(t, a)

	be.revoke()
	a.store.ClearInMemory()
	_, err := a.authService.Restore(context.Background())
	require.NoError(t, err)

	assert.False(t, a.isAdmin())
	assert.Equal(t, []string{view.GuestNavRegion}, a.screen.VisibleIDs())
	assert.True(t, a.store.Load(context.Background()).Empty(), "rejected token removed from disk")
}

func TestApp_LoginInvalidCredentials(t *testing.T) {
	a, _ := newTestApp(t, newFakeBackend())
	stubPassword(t, "wrong")
	a.input("root")

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", userMessage(err))
	assert.False(t, a.isAdmin())
}

func TestApp_OpenByKeyAndTitle(t *testing.T) {
	be := newFakeBackend()
	be.seed(models.ContentItem{ID: "n1", Semester: 1, Subject: "physics", Category: models.CategoryTeacherNotes, Title: "Kinematics", Type: "PDF", Size: "1 MiB", FileURL: "/files/k.pdf"})
	a, out := newTestApp(t, be)
	ctx := context.Background()

	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))
	assert.Contains(t, out.String(), "Physics (PHY101)")
	assert.Contains(t, out.String(), "1. Kinematics [PDF, 1 MiB]")
	assert.Equal(t, "(guest) sem 1/physics/teacher-notes", a.getStatus())

	out.Reset()
	require.NoError(t, a.Open(ctx, []string{"1", "English", "Communication"}))
	assert.Contains(t, out.String(), "No Teacher Notes yet.")
	assert.Equal(t, "(guest) sem 1/english/teacher-notes", a.getStatus())

	err := a.Open(ctx, []string{"1", "Astrology"})
	require.Error(t, err)
	assert.Contains(t, userMessage(err), "unknown subject")
}

func TestApp_TabRequiresOpenSubject(t *testing.T) {
	a, _ := newTestApp(t, newFakeBackend())
	ctx := context.Background()

	for _, err := range []error{
		a.Tab(ctx, []string{"pyqs"}),
		a.List(ctx),
		a.Upload(ctx, []string{"x.pdf"}),
		a.Delete(ctx, []string{"1"}),
		a.Download(ctx, []string{"1"}),
	} {
		require.Error(t, err)
		assert.Equal(t, msgOpenSubjectFirst, userMessage(err))
	}
}

func TestApp_UploadListDownloadDelete(t *testing.T) {
	be := newFakeBackend()
	a, out := newTestApp(t, be)
	ctx := context.Background()
	login(t, a)

	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))
	require.NoError(t, a.Tab(ctx, []string{"resources"}))

	path := writeFile(t, "notes.pdf", "pdf-bytes")
	out.Reset()
	require.NoError(t, a.Upload(ctx, []string{path, "Optics", "I"}))
	assert.Contains(t, out.String(), "Files will be stored locally")
	assert.Contains(t, out.String(), "Upload successful!")

	items := be.list()
	require.Len(t, items, 1)
	assert.Equal(t, "Optics I - notes.pdf", items[0].Description)
	assert.Equal(t, "PDF", items[0].Type)
	assert.Equal(t, models.CategoryResources, items[0].Category)

	out.Reset()
	require.NoError(t, a.List(ctx))
	assert.Contains(t, out.String(), "1. Optics I [PDF")

	out.Reset()
	require.NoError(t, a.Uploads(ctx))
	assert.Contains(t, out.String(), "success")
	assert.Contains(t, out.String(), `"Optics I" (notes.pdf`)

	require.NoError(t, a.Download(ctx, []string{"1"}))
	got, err := os.ReadFile(filepath.Join(a.config.DownloadDir, "notes.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(got))

	a.input("y")
	out.Reset()
	require.NoError(t, a.Delete(ctx, []string{"1"}))
	assert.Contains(t, out.String(), `Are you sure you want to delete "Optics I"?`)
	assert.Contains(t, out.String(), `Deleted "Optics I"`)
	assert.Contains(t, out.String(), "No Resources yet.", "last item gone, tab reloaded")
	assert.Equal(t, []string{"c1"}, be.deleted())
}

func TestApp_UploadAsksForTitle(t *testing.T) {
	be := newFakeBackend()
	a, out := newTestApp(t, be)
	ctx := context.Background()
	login(t, a)
	require.NoError(t, a.Open(ctx, []string{"2", "data-structures"}))

	path := writeFile(t, "trees.pptx", "slides")
	a.input("")
	require.NoError(t, a.Upload(ctx, []string{path}))
	assert.Contains(t, out.String(), "Please enter a topic/title first")
	assert.Empty(t, be.list())

	a.input("Binary Trees")
	require.NoError(t, a.Upload(ctx, []string{path}))
	items := be.list()
	require.Len(t, items, 1)
	assert.Equal(t, "Binary Trees", items[0].Title)
	assert.Equal(t, "PPT", items[0].Type)
}

func TestApp_TabSwitchDiscardsDraft(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend())
	ctx := context.Background()
	login(t, a)
	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))

	q := a.ActiveTab().Query()
	d := a.draft(q)
	d.SetTitle("Stale")
	d.Select(models.BlobFromBytes("old.pdf", []byte("x")))
	require.NoError(t, d.Begin())
	d.Fail("Upload failed: boom")

	require.NoError(t, a.Tab(ctx, []string{"resources"}))
	require.NoError(t, a.Tab(ctx, []string{string(q.Category)}))

	state, status, title, file := a.draft(q).Snapshot()
	assert.Equal(t, models.DraftIdle, state)
	assert.Equal(t, models.StatusReady, status)
	assert.Empty(t, title)
	assert.Nil(t, file)
	assert.NotContains(t, out.String()[strings.LastIndex(out.String(), "=="):], "boom")
}

func TestApp_SameTabKeepsDraft(t *testing.T) {
	a, _ := newTestApp(t, newFakeBackend())
	ctx := context.Background()
	login(t, a)
	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))

	q := a.ActiveTab().Query()
	a.draft(q).SetTitle("Kept")
	require.NoError(t, a.List(ctx))

	_, _, title, _ := a.draft(q).Snapshot()
	assert.Equal(t, "Kept", title)
}

func TestApp_UploadAsGuestIsRefused(t *testing.T) {
	be := newFakeBackend()
	a, out := newTestApp(t, be)
	ctx := context.Background()
	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))

	path := writeFile(t, "a.txt", "x")
	require.NoError(t, a.Upload(ctx, []string{path, "Title"}))
	assert.Contains(t, out.String(), "Admin authentication required")
	assert.Empty(t, be.list())
}

func TestApp_DeleteDeclined(t *testing.T) {
	be := newFakeBackend()
	be.seed(models.ContentItem{ID: "abc123", Semester: 1, Subject: "physics", Category: models.CategoryTeacherNotes, Title: "Waves"})
	a, _ := newTestApp(t, be)
	ctx := context.Background()
	login(t, a)
	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))

	a.input("n")
	err := a.Delete(ctx, []string{"1"})
	require.Error(t, err)
	assert.Equal(t, "Cancelled", userMessage(err))
	assert.Empty(t, be.deleted())
	assert.Equal(t, 1, a.ActiveTab().Len())
}

func TestApp_DeleteBadNumber(t *testing.T) {
	be := newFakeBackend()
	a, _ := newTestApp(t, be)
	ctx := context.Background()
	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))

	require.ErrorIs(t, a.Delete(ctx, []string{"x"}), errBadNumber)
	require.Error(t, a.Delete(ctx, []string{"3"}))
}

func TestApp_AddMetadataOnly(t *testing.T) {
	be := newFakeBackend()
	a, out := newTestApp(t, be)
	ctx := context.Background()
	login(t, a)
	require.NoError(t, a.Open(ctx, []string{"3", "algorithms"}))
	require.NoError(t, a.Tab(ctx, []string{"syllabus"}))

	a.input("Course outline.pdf", "Units 1-5", "", "", "")
	out.Reset()
	require.NoError(t, a.Add(ctx))

	items := be.list()
	require.Len(t, items, 1)
	assert.Equal(t, models.UnknownSize, items[0].Size)
	assert.Equal(t, "PDF", items[0].Type)
	assert.Equal(t, "Units 1-5", items[0].Description)
	assert.Contains(t, out.String(), `Added "Course outline.pdf"`)
	assert.Contains(t, out.String(), "Syllabus refreshed")
	assert.Contains(t, out.String(), "(no file)")
}

func TestApp_AddRequiresAdmin(t *testing.T) {
	a, _ := newTestApp(t, newFakeBackend())
	ctx := context.Background()
	require.NoError(t, a.Open(ctx, []string{"1", "physics"}))

	err := a.Add(ctx)
	require.Error(t, err)
	assert.Equal(t, msgLoginFirst, userMessage(err))
}

func TestApp_QuickAccessGroupsInCatalogOrder(t *testing.T) {
	be := newFakeBackend()
	be.seed(
		models.ContentItem{ID: "1", Semester: 1, Subject: "physics", Category: models.CategoryPYQs, Title: "Physics 2022"},
		models.ContentItem{ID: "2", Semester: 1, Subject: "english", Category: models.CategoryAssignments, Title: "Essay"},
		models.ContentItem{ID: "3", Semester: 2, Subject: "data-structures", Category: models.CategoryPYQs, Title: "Other semester"},
	)
	a, out := newTestApp(t, be)

	require.NoError(t, a.QuickAccess(context.Background(), models.CategoryAssignments, []string{"1"}))
	s := out.String()
	assert.Less(t, strings.Index(s, "== English Communication =="), strings.Index(s, "== Physics =="))
	assert.Contains(t, s, "Essay [Assignments")
	assert.Contains(t, s, "Physics 2022 [PYQs")
	assert.NotContains(t, s, "Other semester")

	out.Reset()
	require.NoError(t, a.QuickAccess(context.Background(), models.CategorySyllabus, []string{"1"}))
	assert.Contains(t, out.String(), "No Syllabus found for semester 1.")

	err := a.QuickAccess(context.Background(), models.CategoryPYQs, nil)
	require.Error(t, err)
	assert.Contains(t, userMessage(err), "Which semester?")
}

func TestApp_StorageAndCheck(t *testing.T) {
	be := newFakeBackend()
	be.drive = true
	a, out := newTestApp(t, be)
	ctx := context.Background()

	require.Equal(t, msgLoginFirst, userMessage(a.Storage(ctx)))

	login(t, a)
	out.Reset()
	require.NoError(t, a.Storage(ctx))
	assert.Contains(t, out.String(), "Files will be stored in Google Drive")

	out.Reset()
	require.NoError(t, a.Check(ctx))
	assert.Contains(t, out.String(), "Session valid")

	out.Reset()
	require.NoError(t, a.WhoAmI(ctx))
	assert.Equal(t, "admin: Site Admin\n", out.String())

	require.NoError(t, a.Logout(ctx))
	out.Reset()
	require.NoError(t, a.WhoAmI(ctx))
	assert.Equal(t, "guest\n", out.String())
}

func TestApp_SemestersAndSubjects(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend())
	ctx := context.Background()

	require.NoError(t, a.Semesters(ctx))
	assert.Contains(t, out.String(), "1. First Semester (5 subjects)")

	out.Reset()
	require.NoError(t, a.Subjects(ctx, []string{"3"}))
	assert.Contains(t, out.String(), "Third Semester")
	assert.Contains(t, out.String(), "database-management")

	err := a.Subjects(ctx, []string{"9"})
	require.Error(t, err)
	assert.Contains(t, userMessage(err), "unknown semester")
}
