package client

import (
	"context"
	"io"

	"github.com/eduhub/eduhub/internal/client/models"
)

// Client is the REST contract of the EduHub backend.
type Client interface {
	Login(ctx context.Context, username, password string) (token string, user *models.User, err error)
	// Verify returns nil when the backend accepts token and ErrUnauthorized
	// when it rejects it. The user is only set if the backend echoes one.
	Verify(ctx context.Context, token string) (*models.User, error)
	ListContent(ctx context.Context, q models.ContentQuery) ([]models.ContentItem, error)
	CreateContent(ctx context.Context, token string, c models.NewContent) error
	UploadContent(ctx context.Context, token string, u Upload) (*models.ContentItem, error)
	DeleteContent(ctx context.Context, token, id string) error
	StorageStatus(ctx context.Context, token string) (models.StorageStatus, error)
	Download(ctx context.Context, fileURL string, w io.Writer) (int64, error)
}

// Upload is the multipart form of POST /content/upload.
type Upload struct {
	File        *models.Blob
	Semester    int
	Subject     string
	Category    models.Category
	Title       string
	Description string
	Type        string
}
