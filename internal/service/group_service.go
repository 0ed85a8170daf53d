package service

import (
	"context"

	"prayerhub/internal/models"
	"prayerhub/internal/repository"
	"prayerhub/internal/validation"
)

// GroupService provides group lifecycle and membership-workflow business logic.
type GroupService struct {
	groupRepo   repository.GroupRepository
	requestRepo repository.MembershipRequestRepository
	gate        *Gate
}

// NewGroupService returns a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, requestRepo repository.MembershipRequestRepository, gate *Gate) *GroupService {
	return &GroupService{
		groupRepo:   groupRepo,
		requestRepo: requestRepo,
		gate:        gate,
	}
}

// CreateGroupInput carries the fields accepted when creating a group.
type CreateGroupInput struct {
	Name        string
	Description string
	IsPrivate   *bool
}

// UpdateGroupInput carries the fields accepted when updating a group.
type UpdateGroupInput struct {
	Name        *string
	Description *string
	IsPrivate   *bool
}

// List returns the groups visible to the actor: public groups plus private
// groups the actor belongs to.
func (s *GroupService) List(ctx context.Context, actorID uint, limit, offset int) ([]models.Group, error) {
	return s.groupRepo.ListVisible(ctx, actorID, limit, offset)
}

// Get returns the group if it is visible to the actor, NotFound otherwise.
func (s *GroupService) Get(ctx context.Context, id, actorID uint) (*models.Group, error) {
	return s.groupRepo.GetVisibleByID(ctx, id, actorID)
}

// Create stores a new group and, in the same transaction, the creator's
// admin membership. Groups default to private.
func (s *GroupService) Create(ctx context.Context, actorID uint, input CreateGroupInput) (*models.Group, error) {
	if err := validation.ValidateGroupName(input.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	isPrivate := true
	if input.IsPrivate != nil {
		isPrivate = *input.IsPrivate
	}

	group := &models.Group{
		Name:            input.Name,
		Description:     input.Description,
		IsPrivate:       isPrivate,
		CreatedByUserID: actorID,
	}
	if err := s.groupRepo.CreateWithAdmin(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Update modifies a group. Requires the admin role in the group itself.
func (s *GroupService) Update(ctx context.Context, id, actorID uint, input UpdateGroupInput) (*models.Group, error) {
	group, err := s.groupRepo.GetVisibleByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Require(ctx, actorID, ActionGroupUpdate, group); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validation.ValidateGroupName(*input.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		group.Name = *input.Name
	}
	if input.Description != nil {
		group.Description = *input.Description
	}
	if input.IsPrivate != nil {
		group.IsPrivate = *input.IsPrivate
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Delete removes a group. Same capability requirement as Update.
func (s *GroupService) Delete(ctx context.Context, id, actorID uint) error {
	group, err := s.groupRepo.GetVisibleByID(ctx, id, actorID)
	if err != nil {
		return err
	}

	if err := s.gate.Require(ctx, actorID, ActionGroupDelete, group); err != nil {
		return err
	}

	return s.groupRepo.Delete(ctx, group.ID)
}

// Members lists the memberships of a group visible to the actor.
func (s *GroupService) Members(ctx context.Context, groupID, actorID uint) ([]models.GroupMembership, error) {
	group, err := s.groupRepo.GetVisibleByID(ctx, groupID, actorID)
	if err != nil {
		return nil, err
	}
	return s.groupRepo.ListMembers(ctx, group.ID)
}

// Join adds the actor as a member of a public group. Private groups cannot
// be joined directly; the membership-request workflow applies instead.
func (s *GroupService) Join(ctx context.Context, groupID, actorID uint) (*models.GroupMembership, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.GetMembership(ctx, group.ID, actorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You are already a member of this group")
	}

	if group.IsPrivate {
		return nil, models.NewForbiddenError("This group is private. Please request to join.")
	}

	membership := &models.GroupMembership{
		GroupID: group.ID,
		UserID:  actorID,
		Role:    models.GroupRoleMember,
	}
	if err := s.groupRepo.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

// RequestJoin files a membership request against a private group. At most
// one pending request may exist per (group, user); a rejected request does
// not block a new one.
func (s *GroupService) RequestJoin(ctx context.Context, groupID, actorID uint, reason string) (*models.MembershipRequest, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.GetMembership(ctx, group.ID, actorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You are already a member of this group")
	}

	if !group.IsPrivate {
		return nil, models.NewInvalidStateError("This group is not private. You can join it directly.")
	}

	pending, err := s.requestRepo.HasPending(ctx, group.ID, actorID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, models.NewConflictError("You already have a pending request for this group")
	}

	request := &models.MembershipRequest{
		GroupID: group.ID,
		UserID:  actorID,
		Status:  models.MembershipRequestStatusPending,
		Reason:  reason,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListRequests returns the membership requests visible to the actor:
// requests in groups the actor administers plus the actor's own.
func (s *GroupService) ListRequests(ctx context.Context, actorID uint, limit, offset int) ([]models.MembershipRequest, error) {
	return s.requestRepo.ListVisible(ctx, actorID, limit, offset)
}

// GetRequest returns a single membership request if visible to the actor.
func (s *GroupService) GetRequest(ctx context.Context, id, actorID uint) (*models.MembershipRequest, error) {
	return s.requestRepo.GetVisibleByID(ctx, id, actorID)
}

// ApproveRequest approves a membership request. Only an admin of the
// request's group may approve. The membership upsert and status stamp are
// one transaction; approving an already-approved request is idempotent.
func (s *GroupService) ApproveRequest(ctx context.Context, requestID, actorID uint) (*models.MembershipRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Require(ctx, actorID, ActionRequestApprove, request); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Approve(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// RejectRequest rejects a membership request. Same authorization as
// ApproveRequest; no membership side effect.
func (s *GroupService) RejectRequest(ctx context.Context, requestID, actorID uint) (*models.MembershipRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Require(ctx, actorID, ActionRequestReject, request); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Reject(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
