package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/filex"
	"github.com/eduhub/eduhub/internal/logging"
)

// Downloader saves an item's file into a local directory.
type Downloader interface {
	Download(ctx context.Context, item models.ContentItem) (path string, n int64, err error)
}

type downloader struct {
	client client.Client
	dir    string
	log    logging.Logger
}

func NewDownloader(c client.Client, dir string, logger logging.Logger) Downloader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &downloader{client: c, dir: dir, log: logger}
}

func (d *downloader) Download(ctx context.Context, item models.ContentItem) (string, int64, error) {
	if !item.HasFile() {
		return "", 0, &OpError{Op: "download", Title: item.Title, Message: "No file available", Err: ErrNoFile}
	}

	dir, err := filex.EnsureDir(d.dir)
	if err != nil {
		return "", 0, err
	}
	name := item.OriginalFileName
	if name == "" {
		name = item.Title
	}
	path := filepath.Join(dir, filex.SafeName(name, item.ID))

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", 0, fmt.Errorf("download %s: %w", item.Title, err)
	}
	defer os.Remove(tmp.Name())

	n, err := d.client.Download(ctx, item.FileURL, tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		d.log.Warn(ctx, "download failed", "id", item.ID, "error", err)
		return "", 0, &OpError{Op: "download", Title: item.Title, Message: err.Error(), Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", 0, fmt.Errorf("download %s: %w", item.Title, err)
	}
	d.log.Info(ctx, "file downloaded", "id", item.ID, "path", path, "bytes", n)
	return path, n, nil
}
