package repository

import (
	"context"
	"errors"

	"prayerhub/internal/cache"
	"prayerhub/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns nil, nil when no user has the given email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// Create inserts the user. A unique-index violation on email surfaces as
// Conflict so concurrent signups racing past the existence check still get
// a clean 409 rather than an internal error.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("An account with this email already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Update persists the user's mutable profile fields. The password column is
// deliberately not written here: cached reads round-trip through JSON, which
// strips the hash, so a whole-row save would blank it.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).
		Model(user).
		Select("full_name", "phone", "bio").
		Updates(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Delete removes the user. The schema cascades to the user's prayers,
// memberships, and requests, and nullifies authored categories.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
