package evidence

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"

	"carsline/internal/domain"
	"carsline/internal/pkg/storage"

	"gorm.io/gorm"
)

type Upload struct {
	File        io.Reader
	Filename    string
	Description string
}

type Service struct {
	evidence EvidenceRepository
	orders   OrderRepository
	files    storage.FileStore
}

func NewService(evidence EvidenceRepository, orders OrderRepository, files storage.FileStore) *Service {
	return &Service{
		evidence: evidence,
		orders:   orders,
		files:    files,
	}
}

// Attach stores the uploaded images under the order's folder and records one
// row per image. Files written before a database failure are cleaned up.
func (s *Service) Attach(ctx context.Context, orderID int64, category domain.EvidenceCategory, uploads []Upload) ([]domain.Evidence, error) {
	if len(uploads) == 0 {
		return nil, ErrValidation
	}
	if category != domain.EvidenceReception && category != domain.EvidenceWork {
		return nil, ErrValidation
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderGone
		}
		return nil, err
	}
	if !o.Active {
		return nil, ErrOrderGone
	}

	stored := make([]string, 0, len(uploads))
	rows := make([]*domain.Evidence, 0, len(uploads))
	for _, u := range uploads {
		relPath, err := s.files.Store(u.File, o.OrderNumber, string(category), u.Description, filepath.Ext(u.Filename))
		if err != nil {
			s.discard(stored)
			return nil, err
		}
		stored = append(stored, relPath)
		rows = append(rows, &domain.Evidence{
			OrderID:     orderID,
			FilePath:    relPath,
			Description: u.Description,
			IsWork:      category == domain.EvidenceWork,
		})
	}

	if err := s.evidence.CreateBatch(ctx, rows); err != nil {
		s.discard(stored)
		return nil, err
	}

	out := make([]domain.Evidence, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out, nil
}

func (s *Service) discard(paths []string) {
	for _, p := range paths {
		if err := s.files.Remove(p); err != nil {
			log.Printf("evidence: orphan file %s: %v", p, err)
		}
	}
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64, category string) ([]domain.Evidence, error) {
	var isWork *bool
	switch domain.EvidenceCategory(category) {
	case domain.EvidenceReception:
		v := false
		isWork = &v
	case domain.EvidenceWork:
		v := true
		isWork = &v
	case "":
	default:
		return nil, ErrValidation
	}
	return s.evidence.ListByOrder(ctx, orderID, isWork)
}

// Image returns the stored bytes for one evidence row. A row whose file has
// gone missing reports ErrFileMissing so the handler can distinguish it from
// a broken store.
func (s *Service) Image(ctx context.Context, id int64) ([]byte, string, error) {
	e, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	data, err := s.files.Retrieve(e.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileMissing) {
			return nil, "", ErrFileMissing
		}
		return nil, "", err
	}
	return data, filepath.Base(e.FilePath), nil
}

// Delete hides the row; with removeFile it also deletes the bytes on disk.
func (s *Service) Delete(ctx context.Context, id int64, removeFile bool) error {
	e, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.evidence.SoftDelete(ctx, id); err != nil {
		return err
	}
	if removeFile {
		if err := s.files.Remove(e.FilePath); err != nil {
			log.Printf("evidence: remove file %s: %v", e.FilePath, err)
		}
	}
	return nil
}
