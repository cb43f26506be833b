package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/repositories/uploads"
	"github.com/eduhub/eduhub/internal/logging"
)

// User-facing upload messages.
const (
	MsgUploadSuccess      = "Upload successful!"
	MsgLoginRequired      = "Admin authentication required. Please login as admin first."
	MsgTitleRequired      = "Please enter a topic/title first"
	MsgNoFileSelected     = "Please select a file first"
	MsgAuthExpired        = "Authentication expired. Please login again."
	MsgFileTooLarge       = "File too large. Maximum size is 100MB."
	MsgServerUnreachable  = "Cannot connect to server. Please check if the server is running."
	MsgUploadInProgress   = "An upload is already in progress"
	uploadFailedMsgPrefix = "Upload failed: "
)

// UploadRequest describes one upload. When Draft is set the request comes
// from a tab's upload widget: File and Title are taken from the draft, a
// title is mandatory and the draft walks idle → uploading → success|error →
// idle. Without a draft a blank title defaults to the file name.
type UploadRequest struct {
	Draft    *models.UploadDraft
	File     *models.Blob
	Semester int
	Subject  string
	Category models.Category
	Title    string
}

// UploadResult is what the widget shows once the upload settles.
type UploadResult struct {
	Success bool
	Message string
	Kind    client.ErrorKind
	Item    *models.ContentItem
	Err     error
}

type Uploader interface {
	Upload(ctx context.Context, req UploadRequest) UploadResult
}

// UploaderConfig holds the timings of the widget.
type UploaderConfig struct {
	StatusResetDelay time.Duration
	RefreshDelay     time.Duration
}

type uploader struct {
	client    client.Client
	store     SessionStore
	view      ViewSwitcher
	journal   uploads.Repository
	refresher Refresher
	cfg       UploaderConfig
	log       logging.Logger

	// after schedules f; swapped in tests.
	after func(d time.Duration, f func())
}

func NewUploader(c client.Client, store SessionStore, sw ViewSwitcher, journal uploads.Repository, refresher Refresher, cfg UploaderConfig, logger logging.Logger) Uploader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &uploader{
		client:    c,
		store:     store,
		view:      sw,
		journal:   journal,
		refresher: refresher,
		cfg:       cfg,
		log:       logger.With("service", "upload"),
		after:     func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

func (u *uploader) Upload(ctx context.Context, req UploadRequest) UploadResult {
	file, title := req.File, strings.TrimSpace(req.Title)
	if req.Draft != nil {
		_, _, title, file = req.Draft.Snapshot()
		req.Category = req.Draft.Tab()
	}

	token := u.store.Token()
	if token == "" {
		u.log.Warn(ctx, "upload refused without session")
		return u.reject(req, MsgLoginRequired, client.ErrUnauthenticated)
	}
	if file == nil {
		return u.reject(req, MsgNoFileSelected, ErrNoFileSelected)
	}
	if title == "" {
		if req.Draft != nil {
			return u.reject(req, MsgTitleRequired, ErrTitleRequired)
		}
		title = file.Name
	}

	if req.Draft != nil {
		if err := req.Draft.Begin(); err != nil {
			return UploadResult{Message: MsgUploadInProgress, Kind: client.KindNone, Err: err}
		}
	}

	journalID := u.journalStart(ctx, req, title, file)

	item, err := u.client.UploadContent(ctx, token, client.Upload{
		File:        file,
		Semester:    req.Semester,
		Subject:     req.Subject,
		Category:    req.Category,
		Title:       title,
		Description: models.UploadDescription(title, file.Name),
		Type:        models.DetectType(file.Name),
	})
	if err != nil {
		return u.fail(ctx, req, title, journalID, err)
	}

	u.journalFinish(ctx, journalID, uploads.StatusSuccess, MsgUploadSuccess, item)
	u.log.Info(ctx, "file uploaded", "title", title, "file", file.Name, "size", models.FormatSize(file.Size),
		"semester", req.Semester, "subject", req.Subject, "category", req.Category)

	if req.Draft != nil {
		req.Draft.Succeed(MsgUploadSuccess)
		u.after(u.cfg.StatusResetDelay, req.Draft.Reset)
	}
	if u.refresher != nil {
		q := models.ContentQuery{Semester: req.Semester, Subject: req.Subject, Category: req.Category}
		u.after(u.cfg.RefreshDelay, func() { u.refresher.Refresh(context.Background(), q) })
	}
	return UploadResult{Success: true, Message: MsgUploadSuccess, Item: item}
}

// reject reports a failure found before any network call. The draft stays
// idle and its warning clears after the reset delay.
func (u *uploader) reject(req UploadRequest, msg string, err error) UploadResult {
	if req.Draft != nil {
		req.Draft.Warn(msg)
		u.after(u.cfg.StatusResetDelay, req.Draft.Reset)
	}
	return UploadResult{Message: msg, Kind: client.Kind(err), Err: err}
}

func (u *uploader) fail(ctx context.Context, req UploadRequest, title, journalID string, err error) UploadResult {
	kind := client.Kind(err)
	var msg string
	switch kind {
	case client.KindUnauthorized:
		msg = MsgAuthExpired
		// A 401 here means the token died server-side; drop it so the next
		// protected call fails fast.
		u.view.ShowGuest()
		if cerr := u.store.Clear(ctx); cerr != nil {
			u.log.Error(ctx, "session not cleared after 401", "error", cerr)
		}
	case client.KindPayloadTooLarge:
		msg = MsgFileTooLarge
	case client.KindUnreachable:
		msg = MsgServerUnreachable
	default:
		msg = serverMessage(err)
	}

	u.log.Warn(ctx, "upload failed", "title", title, "kind", kind, "error", err)
	u.journalFinish(ctx, journalID, uploads.StatusFailed, msg, nil)

	if req.Draft != nil {
		req.Draft.Fail(uploadFailedMsgPrefix + msg)
		u.after(u.cfg.StatusResetDelay, req.Draft.Reset)
	}
	return UploadResult{
		Message: fmt.Sprintf("Upload of %q failed: %s", title, msg),
		Kind:    kind,
		Err:     err,
	}
}

func serverMessage(err error) string {
	var se *client.StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return fmt.Sprintf("Server error: %d", se.StatusCode)
	}
	return err.Error()
}

func (u *uploader) journalStart(ctx context.Context, req UploadRequest, title string, file *models.Blob) string {
	if u.journal == nil {
		return ""
	}
	id, err := u.journal.Start(ctx, uploads.Record{
		Semester: req.Semester,
		Subject:  req.Subject,
		Category: req.Category,
		Title:    title,
		FileName: file.Name,
		Size:     file.Size,
	})
	if err != nil {
		u.log.Warn(ctx, "upload journal unavailable", "error", err)
		return ""
	}
	return id
}

func (u *uploader) journalFinish(ctx context.Context, id string, status uploads.Status, msg string, item *models.ContentItem) {
	if u.journal == nil || id == "" {
		return
	}
	contentID := ""
	if item != nil {
		contentID = item.ID
	}
	if err := u.journal.Finish(ctx, id, status, msg, contentID); err != nil {
		u.log.Warn(ctx, "upload journal not updated", "id", id, "error", err)
	}
}
