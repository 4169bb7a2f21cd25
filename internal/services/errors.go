// Package services defines the use-cases over the recipe manager schema:
// validated creates, partial updates, referenced-row protection, and the
// recipe cascade delete. This file centralizes service-level error values
// so they can be consistently returned by service methods and mapped to
// HTTP results at the handler layer.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the row targeted by a get/update/delete
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInUse is returned when deleting master data (ingredient,
	// packaging material, category) that other rows still reference.
	ErrInUse = errors.New("record is still referenced")

	// ErrBadReference is the base error for a payload foreign key that
	// does not resolve to an existing row. The per-entity variants below
	// wrap it so callers can match either the family or the exact target.
	ErrBadReference = errors.New("referenced record not found")

	ErrCategoryNotFound          = fmt.Errorf("%w: recipe category", ErrBadReference)
	ErrIngredientNotFound        = fmt.Errorf("%w: ingredient", ErrBadReference)
	ErrPackagingMaterialNotFound = fmt.Errorf("%w: packaging material", ErrBadReference)
	ErrRecipeNotFound            = fmt.Errorf("%w: recipe", ErrBadReference)
)
