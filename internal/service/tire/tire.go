package tire

import (
	"context"
	"fmt"

	"tireshop/internal/entities"
	"tireshop/internal/pkg/validation"
)

type Tire struct {
	repository Repository
}

func New(repository Repository) *Tire {
	return &Tire{
		repository: repository,
	}
}

// GetActiveTires возвращает шины витрины, отсортированные по бренду, серии и размеру.
func (s *Tire) GetActiveTires(ctx context.Context) ([]entities.Tire, error) {
	tires, err := s.repository.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active tires: %w", err)
	}

	return tires, nil
}

func (s *Tire) GetAllTires(ctx context.Context) ([]entities.Tire, error) {
	tires, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tires: %w", err)
	}

	return tires, nil
}

func (s *Tire) GetTire(ctx context.Context, id int64) (*entities.Tire, error) {
	if !isValidID(id) {
		return nil, ErrInvalidTireID
	}

	tire, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tire: %w", err)
	}

	return tire, nil
}

func (s *Tire) SearchTires(ctx context.Context, filter entities.TireFilter) ([]entities.Tire, error) {
	tires, err := s.repository.Search(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to search tires: %w", err)
	}

	return tires, nil
}

func (s *Tire) CreateTire(ctx context.Context, tireModify entities.TireModify) (*entities.Tire, error) {
	normalized, err := validateTire(tireModify)
	if err != nil {
		return nil, err
	}
	normalized.ID = nil

	tire, err := s.repository.Create(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("create tire: %w", err)
	}

	return tire, nil
}

// UpdateTire полностью заменяет запись шины.
func (s *Tire) UpdateTire(ctx context.Context, id int64, tireModify entities.TireModify) (*entities.Tire, error) {
	if !isValidID(id) {
		return nil, ErrInvalidTireID
	}

	normalized, err := validateTire(tireModify)
	if err != nil {
		return nil, err
	}
	normalized.ID = &id

	tire, err := s.repository.Update(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to update tire: %w", err)
	}

	return tire, nil
}

func (s *Tire) UpdateActiveStatus(ctx context.Context, id int64, isActive *bool) (*entities.Tire, error) {
	if !isValidID(id) {
		return nil, ErrInvalidTireID
	}
	if isActive == nil {
		return nil, &validation.Error{Fields: map[string]string{"isActive": validation.MsgNotNull}}
	}

	tire, err := s.repository.UpdateActive(ctx, id, *isActive)
	if err != nil {
		return nil, fmt.Errorf("failed to update tire status: %w", err)
	}

	return tire, nil
}
