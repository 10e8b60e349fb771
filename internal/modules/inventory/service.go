package inventory

import (
	"context"
	"errors"
	"strings"

	"carsline/internal/domain"
	"carsline/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const autocompleteMinChars = 2

type Service struct {
	parts PartRepository
}

func NewService(parts PartRepository) *Service {
	return &Service{parts: parts}
}

// Create adds a stocked part. The part number is globally unique; both the
// pre-check and the unique index can report the duplicate.
func (s *Service) Create(ctx context.Context, req CreatePartRequest) (*domain.Part, error) {
	if strings.TrimSpace(req.PartNumber) == "" {
		return nil, ErrValidation
	}

	if _, err := s.parts.GetByPartNumber(ctx, req.PartNumber); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &domain.Part{
		PartNumber: req.PartNumber,
		Type:       req.Type,
		Location:   req.Location,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Quantity:   req.Quantity,
	}
	if err := s.parts.Create(ctx, p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Part, error) {
	return s.parts.List(ctx)
}

func (s *Service) ListPaginated(ctx context.Context, search string, page, pageSize int) ([]domain.Part, int64, error) {
	return s.parts.ListPaginated(ctx, search, page, pageSize)
}

// Autocomplete suggests part numbers for a prefix. Short prefixes return
// nothing rather than the whole catalog.
func (s *Service) Autocomplete(ctx context.Context, prefix string) ([]domain.Part, error) {
	if len(strings.TrimSpace(prefix)) < autocompleteMinChars {
		return []domain.Part{}, nil
	}
	return s.parts.Autocomplete(ctx, prefix)
}

func (s *Service) GetByPartNumber(ctx context.Context, number string) (*domain.Part, error) {
	p, err := s.parts.GetByPartNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Increase(ctx context.Context, id int64, amount int) (*domain.Part, error) {
	return s.adjust(ctx, id, amount)
}

func (s *Service) Decrease(ctx context.Context, id int64, amount int) (*domain.Part, error) {
	return s.adjust(ctx, id, -amount)
}

func (s *Service) adjust(ctx context.Context, id int64, delta int) (*domain.Part, error) {
	if delta == 0 {
		return nil, ErrValidation
	}
	p, err := s.parts.AdjustQuantity(ctx, id, delta)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, ErrInsufficient
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.parts.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
