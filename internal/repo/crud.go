// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the generic CRUD primitives shared by
// every entity type.
//
// All functions are context-aware and accept a *gorm.DB handle, making
// them safe for use within transactions. They follow the "thin repository"
// approach: no business logic, only persistence and query composition.
// Services are responsible for timestamps, foreign-key resolution, and
// transaction boundaries.
//
// Error semantics:
//   - When a row is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// Create inserts row and backfills its generated primary key.
func Create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Create(row).Error
}

// Get fetches a single row by primary key, or ErrNotFound.
func Get[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var out T
	if err := db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns a page of rows in storage order (primary key ascending).
// An out-of-range offset yields an empty slice, not an error.
func List[T any](ctx context.Context, db *gorm.DB, offset, limit int) ([]T, error) {
	var out []T
	err := db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// Save persists all fields of row (full-row update by primary key).
func Save[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Save(row).Error
}

// Delete removes a row by primary key, returning ErrNotFound when no row
// matched.
func Delete[T any](ctx context.Context, db *gorm.DB, id uint) error {
	var model T
	res := db.WithContext(ctx).Delete(&model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a row with the given primary key exists.
func Exists[T any](ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var model T
	var n int64
	err := db.WithContext(ctx).Model(&model).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// CountWhere counts rows of T matching the condition. Used by services for
// referenced-row checks before master-data deletion.
func CountWhere[T any](ctx context.Context, db *gorm.DB, query string, args ...any) (int64, error) {
	var model T
	var n int64
	err := db.WithContext(ctx).Model(&model).Where(query, args...).Count(&n).Error
	return n, err
}
