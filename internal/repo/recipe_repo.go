// Package repo – recipe-specific queries.
//
// The recipe aggregate owns its detail rows, so deletion is a two-step
// removal that callers must wrap in a transaction. Detail listing is the
// one query in the system with a semantic ordering contract: ascending
// display_order, the order lines appear on the printed recipe sheet.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
)

// DeleteRecipeWithDetails removes all detail rows for recipeID and then
// the recipe row itself. The caller provides a transaction-bound handle so
// both removals commit or roll back together. Returns ErrNotFound when the
// recipe row does not exist (detail rows are never removed in that case,
// since the recipe existence check runs first).
func DeleteRecipeWithDetails(ctx context.Context, tx *gorm.DB, recipeID uint) error {
	var n int64
	if err := tx.WithContext(ctx).Model(&domain.Recipe{}).Where("id = ?", recipeID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&domain.RecipeDetail{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Delete(&domain.Recipe{}, recipeID).Error
}

// ListRecipeDetails returns every detail row of recipeID ordered ascending
// by display_order. A recipe with no details yields an empty slice.
func ListRecipeDetails(ctx context.Context, db *gorm.DB, recipeID uint) ([]domain.RecipeDetail, error) {
	var out []domain.RecipeDetail
	err := db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("display_order asc").
		Find(&out).Error
	return out, err
}
