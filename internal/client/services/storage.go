package services

import (
	"context"

	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/logging"
)

// StorageService reports where uploads will be kept. It never fails: any
// error yields local storage with Fallback set.
type StorageService interface {
	Status(ctx context.Context) models.StorageStatus
}

type storageService struct {
	client client.Client
	store  SessionStore
	log    logging.Logger
}

func NewStorageService(c client.Client, store SessionStore, logger logging.Logger) StorageService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &storageService{client: c, store: store, log: logger}
}

func (s *storageService) Status(ctx context.Context) models.StorageStatus {
	st, err := s.client.StorageStatus(ctx, s.store.Token())
	if err != nil {
		s.log.Warn(ctx, "storage status unavailable, assuming local storage", "error", err)
		return models.StorageStatus{Fallback: true}
	}
	return st
}
