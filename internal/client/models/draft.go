package models

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DraftState is the visible state of a tab's upload widget.
type DraftState string

const (
	DraftIdle      DraftState = "idle"
	DraftUploading DraftState = "uploading"
	DraftSuccess   DraftState = "success"
	DraftError     DraftState = "error"
)

// StatusReady is the status line of an idle draft.
const StatusReady = "Ready to upload"

var ErrUploadInProgress = errors.New("upload already in progress")

// Blob is an opaque file handed to the upload endpoint.
type Blob struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// BlobFromPath stats path and returns a Blob that opens it lazily.
func BlobFromPath(path string) (*Blob, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &Blob{
		Name: filepath.Base(path),
		Size: fi.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// BlobFromBytes wraps an in-memory payload.
func BlobFromBytes(name string, data []byte) *Blob {
	return &Blob{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(string(data))), nil
		},
	}
}

// UploadDraft is the transient state of one tab's upload widget:
// idle → uploading → success|error → idle.
// It is safe for concurrent use because the reset runs on a timer.
type UploadDraft struct {
	mu     sync.Mutex
	tab    Category
	title  string
	file   *Blob
	status string
	state  DraftState
}

func NewUploadDraft(tab Category) *UploadDraft {
	return &UploadDraft{tab: tab, status: StatusReady, state: DraftIdle}
}

func (d *UploadDraft) Tab() Category { return d.tab }

func (d *UploadDraft) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = strings.TrimSpace(title)
}

func (d *UploadDraft) Select(file *Blob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.file = file
}

// Begin moves an idle (or finished) draft to uploading.
func (d *UploadDraft) Begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DraftUploading {
		return ErrUploadInProgress
	}
	d.state = DraftUploading
	d.status = "Uploading..."
	return nil
}

// Warn shows a message without leaving idle, e.g. a missing title.
func (d *UploadDraft) Warn(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = msg
}

func (d *UploadDraft) Succeed(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = DraftSuccess
	d.status = msg
	d.title = ""
	d.file = nil
}

func (d *UploadDraft) Fail(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = DraftError
	d.status = msg
}

// Reset returns the draft to idle and discards the title and selected
// file. An in-flight upload is not affected.
func (d *UploadDraft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DraftUploading {
		return
	}
	d.state = DraftIdle
	d.status = StatusReady
	d.title = ""
	d.file = nil
}

// Snapshot returns the current values under the lock.
func (d *UploadDraft) Snapshot() (state DraftState, status, title string, file *Blob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, d.status, d.title, d.file
}

func (d *UploadDraft) State() DraftState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *UploadDraft) Status() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}
