// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"prayerhub/internal/models"

	"gorm.io/gorm"
)

// PrayerRepository defines persistence operations for prayers.
type PrayerRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Prayer, error)
	GetVisibleByID(ctx context.Context, id, actorID uint) (*models.Prayer, error)
	ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.Prayer, error)
	Create(ctx context.Context, prayer *models.Prayer) error
	Update(ctx context.Context, prayer *models.Prayer) error
	Delete(ctx context.Context, id uint) error
	Intercede(ctx context.Context, id uint) (uint, error)
}

type prayerRepository struct {
	db *gorm.DB
}

// NewPrayerRepository returns a new PrayerRepository implementation.
func NewPrayerRepository(db *gorm.DB) PrayerRepository {
	return &prayerRepository{db: db}
}

// visibleScope builds the read-visibility predicate for the given actor:
// public prayers, the actor's own prayers, and group prayers in groups the
// actor belongs to. A single set-union query, no per-row checks.
func (r *prayerRepository) visibleScope(actorID uint) *gorm.DB {
	memberGroups := r.db.Model(&models.GroupMembership{}).
		Select("group_id").
		Where("user_id = ?", actorID)

	return r.db.
		Where("privacy_level = ?", models.PrivacyPublic).
		Or("author_id = ?", actorID).
		Or("privacy_level = ? AND group_id IN (?)", models.PrivacyGroup, memberGroups)
}

func (r *prayerRepository) GetByID(ctx context.Context, id uint) (*models.Prayer, error) {
	var prayer models.Prayer
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		First(&prayer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Prayer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &prayer, nil
}

func (r *prayerRepository) GetVisibleByID(ctx context.Context, id, actorID uint) (*models.Prayer, error) {
	var prayer models.Prayer
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("id = ?", id).
		Where(r.visibleScope(actorID)).
		First(&prayer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Invisible and absent are indistinguishable to the caller.
			return nil, models.NewNotFoundError("Prayer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &prayer, nil
}

func (r *prayerRepository) ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.Prayer, error) {
	var prayers []models.Prayer
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where(r.visibleScope(actorID)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&prayers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return prayers, nil
}

func (r *prayerRepository) Create(ctx context.Context, prayer *models.Prayer) error {
	if err := r.db.WithContext(ctx).Create(prayer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *prayerRepository) Update(ctx context.Context, prayer *models.Prayer) error {
	if err := r.db.WithContext(ctx).Save(prayer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *prayerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Prayer{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Prayer", id)
	}
	return nil
}

// Intercede atomically increments the prayer counter by one and returns the
// updated count. The increment is a single UPDATE expression evaluated by the
// database, so concurrent calls never lose updates. UpdateColumn skips the
// updated_at hook: interceding is not an edit.
func (r *prayerRepository) Intercede(ctx context.Context, id uint) (uint, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Prayer{}).
		Where("id = ?", id).
		UpdateColumn("prayer_count", gorm.Expr("prayer_count + ?", 1))
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, models.NewNotFoundError("Prayer", id)
	}

	var prayer models.Prayer
	if err := r.db.WithContext(ctx).
		Select("prayer_count").
		First(&prayer, id).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return prayer.PrayerCount, nil
}
