package repository

import (
	"context"
	"errors"
	"time"

	"prayerhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRequestRepository defines persistence operations for join requests.
type MembershipRequestRepository interface {
	GetByID(ctx context.Context, id uint) (*models.MembershipRequest, error)
	GetVisibleByID(ctx context.Context, id, actorID uint) (*models.MembershipRequest, error)
	ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.MembershipRequest, error)
	HasPending(ctx context.Context, groupID, userID uint) (bool, error)
	Create(ctx context.Context, request *models.MembershipRequest) error
	Approve(ctx context.Context, request *models.MembershipRequest) error
	Reject(ctx context.Context, request *models.MembershipRequest) error
}

type membershipRequestRepository struct {
	db *gorm.DB
}

// NewMembershipRequestRepository returns a new MembershipRequestRepository implementation.
func NewMembershipRequestRepository(db *gorm.DB) MembershipRequestRepository {
	return &membershipRequestRepository{db: db}
}

// visibleScope builds the request read-visibility predicate: requests in
// groups where the actor holds the admin role, plus the actor's own requests.
// Anything else is silently invisible.
func (r *membershipRequestRepository) visibleScope(actorID uint) *gorm.DB {
	adminGroups := r.db.Model(&models.GroupMembership{}).
		Select("group_id").
		Where("user_id = ? AND role = ?", actorID, models.GroupRoleAdmin)

	return r.db.
		Where("group_id IN (?)", adminGroups).
		Or("user_id = ?", actorID)
}

func (r *membershipRequestRepository) GetByID(ctx context.Context, id uint) (*models.MembershipRequest, error) {
	var request models.MembershipRequest
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Preload("User").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Membership request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *membershipRequestRepository) GetVisibleByID(ctx context.Context, id, actorID uint) (*models.MembershipRequest, error) {
	var request models.MembershipRequest
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Preload("User").
		Where("id = ?", id).
		Where(r.visibleScope(actorID)).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Membership request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *membershipRequestRepository) ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.MembershipRequest, error) {
	var requests []models.MembershipRequest
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Preload("User").
		Where(r.visibleScope(actorID)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *membershipRequestRepository) HasPending(ctx context.Context, groupID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MembershipRequest{}).
		Where("group_id = ? AND user_id = ? AND status = ?",
			groupID, userID, models.MembershipRequestStatusPending).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *membershipRequestRepository) Create(ctx context.Context, request *models.MembershipRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Approve upserts the membership and stamps the request in one transaction.
// ON CONFLICT DO NOTHING on the membership's composite key makes the
// operation idempotent: an existing membership is never duplicated and its
// role is never downgraded.
func (r *membershipRequestRepository) Approve(ctx context.Context, request *models.MembershipRequest) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		membership := models.GroupMembership{
			GroupID: request.GroupID,
			UserID:  request.UserID,
			Role:    models.GroupRoleMember,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&membership).Error; err != nil {
			return err
		}

		return tx.Model(&models.MembershipRequest{}).
			Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"status":       models.MembershipRequestStatusApproved,
				"processed_at": now,
			}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	request.Status = models.MembershipRequestStatusApproved
	request.ProcessedAt = &now
	return nil
}

// Reject stamps the request rejected. No membership side effect.
func (r *membershipRequestRepository) Reject(ctx context.Context, request *models.MembershipRequest) error {
	now := time.Now().UTC()
	if err := r.db.WithContext(ctx).
		Model(&models.MembershipRequest{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"status":       models.MembershipRequestStatusRejected,
			"processed_at": now,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}

	request.Status = models.MembershipRequestStatusRejected
	request.ProcessedAt = &now
	return nil
}
