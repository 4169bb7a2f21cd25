// Package services – EggMasterService
//
// The egg master stores reference weights for whole egg, egg white, and
// egg yolk in grams (decimal 5,2). Create applies the conventional
// defaults of 50.00 / 30.00 / 20.00 when a weight is omitted.
package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
	"github.com/bakehouse/go-recipe-backend/internal/repo"
	"github.com/bakehouse/go-recipe-backend/internal/validation"
)

// Default egg part weights in grams.
var (
	defaultWholeEggWeight = decimal.New(5000, -2) // 50.00
	defaultEggWhiteWeight = decimal.New(3000, -2) // 30.00
	defaultEggYolkWeight  = decimal.New(2000, -2) // 20.00
)

// EggMasterService implements the use-cases around egg reference weights.
type EggMasterService struct {
	DB *gorm.DB
}

// CreateEggMasterInput is the payload for creating an egg master row.
type CreateEggMasterInput struct {
	WholeEggWeight *decimal.Decimal `json:"whole_egg_weight"`
	EggWhiteWeight *decimal.Decimal `json:"egg_white_weight"`
	EggYolkWeight  *decimal.Decimal `json:"egg_yolk_weight"`
}

// UpdateEggMasterInput is the partial-update payload. The weights are
// not-null columns, so explicit null is rejected.
type UpdateEggMasterInput struct {
	WholeEggWeight domain.Optional[decimal.Decimal] `json:"whole_egg_weight"`
	EggWhiteWeight domain.Optional[decimal.Decimal] `json:"egg_white_weight"`
	EggYolkWeight  domain.Optional[decimal.Decimal] `json:"egg_yolk_weight"`
}

// Create validates in and persists a new egg master row, applying the
// default weights for omitted fields.
func (s *EggMasterService) Create(ctx context.Context, in CreateEggMasterInput) (*domain.EggMaster, error) {
	var c validation.Collector
	c.DecimalPtr("whole_egg_weight", in.WholeEggWeight, validation.EggWeight)
	c.DecimalPtr("egg_white_weight", in.EggWhiteWeight, validation.EggWeight)
	c.DecimalPtr("egg_yolk_weight", in.EggYolkWeight, validation.EggWeight)
	if err := c.Err(); err != nil {
		return nil, err
	}

	t := now()
	row := &domain.EggMaster{
		WholeEggWeight: orDefault(in.WholeEggWeight, defaultWholeEggWeight),
		EggWhiteWeight: orDefault(in.EggWhiteWeight, defaultEggWhiteWeight),
		EggYolkWeight:  orDefault(in.EggYolkWeight, defaultEggYolkWeight),
		CreatedAt:      t,
		UpdatedAt:      t,
	}
	if err := repo.Create(ctx, s.DB, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns an egg master row by id, or ErrNotFound.
func (s *EggMasterService) Get(ctx context.Context, id uint) (*domain.EggMaster, error) {
	row, err := repo.Get[domain.EggMaster](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of egg master rows in storage order.
func (s *EggMasterService) List(ctx context.Context, offset, limit int) ([]domain.EggMaster, error) {
	return repo.List[domain.EggMaster](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in and refreshes updated_at.
func (s *EggMasterService) Update(ctx context.Context, id uint, in UpdateEggMasterInput) (*domain.EggMaster, error) {
	var c validation.Collector
	c.OptDecimal("whole_egg_weight", in.WholeEggWeight, false, validation.EggWeight)
	c.OptDecimal("egg_white_weight", in.EggWhiteWeight, false, validation.EggWeight)
	c.OptDecimal("egg_yolk_weight", in.EggYolkWeight, false, validation.EggWeight)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.EggMaster
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.EggMaster](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if v, ok := in.WholeEggWeight.Value(); ok {
			got.WholeEggWeight = v
		}
		if v, ok := in.EggWhiteWeight.Value(); ok {
			got.EggWhiteWeight = v
		}
		if v, ok := in.EggYolkWeight.Value(); ok {
			got.EggYolkWeight = v
		}
		got.UpdatedAt = now()
		if err := repo.Save(ctx, tx, got); err != nil {
			return err
		}
		row = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes an egg master row, or fails with ErrNotFound.
func (s *EggMasterService) Delete(ctx context.Context, id uint) error {
	err := repo.Delete[domain.EggMaster](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
