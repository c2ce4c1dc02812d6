package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"promocodeapi/internal/model"
	"promocodeapi/internal/repository"
	"promocodeapi/internal/storage"
)

// ErrExportDisabled is returned when no object storage is configured.
var ErrExportDisabled = errors.New("export storage is not configured")

// ExportResult describes an uploaded employee directory snapshot.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExportService writes employee directory snapshots to object storage.
type ExportService interface {
	// Export uploads the detailed projection of every employee as one JSON
	// document and returns a pre-signed link to it. The object is removed
	// again if the link cannot be issued.
	Export(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	store  storage.Storage
	repo   repository.Repository[model.Employee]
	expiry time.Duration
	now    func() time.Time
}

// NewExportService constructs a new ExportService. store may be nil, in which
// case every export fails with ErrExportDisabled.
func NewExportService(store storage.Storage, repo repository.Repository[model.Employee], expiry time.Duration) ExportService {
	return &exportService{
		store:  store,
		repo:   repo,
		expiry: expiry,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *exportService) Export(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportDisabled
	}

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	payload := make([]*EmployeeResponse, 0, len(items))
	for _, e := range items {
		payload = append(payload, newEmployeeResponse(e))
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	createdAt := s.now()
	key := fmt.Sprintf("exports/employees-%s-%s.json", createdAt.Format("20060102T150405Z"), uuid.NewString())

	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"employee-count": strconv.Itoa(len(payload)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.expiry)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &ExportResult{
		Key:       info.Key,
		URL:       url,
		Count:     len(payload),
		CreatedAt: createdAt,
	}, nil
}
