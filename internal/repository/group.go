package repository

import (
	"context"
	"errors"

	"prayerhub/internal/cache"
	"prayerhub/internal/models"

	"gorm.io/gorm"
)

// GroupRepository defines persistence operations for groups and memberships.
type GroupRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	GetVisibleByID(ctx context.Context, id, actorID uint) (*models.Group, error)
	ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.Group, error)
	CreateWithAdmin(ctx context.Context, group *models.Group) error
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id uint) error
	GetMembership(ctx context.Context, groupID, userID uint) (*models.GroupMembership, error)
	CreateMembership(ctx context.Context, membership *models.GroupMembership) error
	ListMembers(ctx context.Context, groupID uint) ([]models.GroupMembership, error)
	CountMembers(ctx context.Context, groupID uint) (int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository returns a new GroupRepository implementation.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// visibleScope builds the group read-visibility predicate: public groups
// plus private groups the actor is a member of.
func (r *groupRepository) visibleScope(actorID uint) *gorm.DB {
	memberGroups := r.db.Model(&models.GroupMembership{}).
		Select("group_id").
		Where("user_id = ?", actorID)

	return r.db.
		Where("is_private = ?", false).
		Or("id IN (?)", memberGroups)
}

// GetByID reads the group without a visibility check. Join and request-join
// lookups are actor-independent, so this read is cache-aside.
func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	key := cache.GroupKey(id)

	err := cache.Aside(ctx, key, &group, cache.GroupTTL, func() error {
		if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Group", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetVisibleByID(ctx context.Context, id, actorID uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where(r.visibleScope(actorID)).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Group", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}

func (r *groupRepository) ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).
		Where(r.visibleScope(actorID)).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

// CreateWithAdmin creates the group and the creator's admin membership in one
// transaction. A group must never exist without an admin member, so both
// writes commit or neither does.
func (r *groupRepository) CreateWithAdmin(ctx context.Context, group *models.Group) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		membership := models.GroupMembership{
			GroupID: group.ID,
			UserID:  group.CreatedByUserID,
			Role:    models.GroupRoleAdmin,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *groupRepository) Update(ctx context.Context, group *models.Group) error {
	if err := r.db.WithContext(ctx).Save(group).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateGroup(ctx, group.ID)
	return nil
}

func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Group{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Group", id)
	}
	cache.InvalidateGroup(ctx, id)
	return nil
}

// GetMembership returns the membership row for (group, user), or nil when
// the user is not a member.
func (r *groupRepository) GetMembership(ctx context.Context, groupID, userID uint) (*models.GroupMembership, error) {
	var membership models.GroupMembership
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &membership, nil
}

func (r *groupRepository) CreateMembership(ctx context.Context, membership *models.GroupMembership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID uint) ([]models.GroupMembership, error) {
	var members []models.GroupMembership
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}

func (r *groupRepository) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.GroupMembership{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
