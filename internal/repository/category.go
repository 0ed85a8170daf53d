package repository

import (
	"context"
	"errors"

	"prayerhub/internal/cache"
	"prayerhub/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines persistence operations for prayer categories.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*models.PrayerCategory, error)
	List(ctx context.Context) ([]models.PrayerCategory, error)
	Create(ctx context.Context, category *models.PrayerCategory) error
	Update(ctx context.Context, category *models.PrayerCategory) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.PrayerCategory, error) {
	var category models.PrayerCategory
	key := cache.CategoryKey(id)

	err := cache.Aside(ctx, key, &category, cache.CategoryTTL, func() error {
		if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Category", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories ordered by name. Reads are cache-aside;
// category writes invalidate the list key.
func (r *categoryRepository) List(ctx context.Context) ([]models.PrayerCategory, error) {
	var categories []models.PrayerCategory

	err := cache.Aside(ctx, cache.CategoryListKey, &categories, cache.CategoryTTL, func() error {
		if err := r.db.WithContext(ctx).
			Order("name ASC").
			Find(&categories).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.PrayerCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCategory(ctx, category.ID)
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.PrayerCategory) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCategory(ctx, category.ID)
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PrayerCategory{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Category", id)
	}
	cache.InvalidateCategory(ctx, id)
	return nil
}
