// Package service implements the business logic layer between HTTP handlers
// and repositories.
package service

import (
	"context"

	"prayerhub/internal/models"
	"prayerhub/internal/repository"
)

// Capability is a named authorization fact required to perform an operation.
type Capability int

const (
	// CapabilityNone means the operation only requires authentication.
	CapabilityNone Capability = iota
	// CapabilityGroupAdmin requires the admin role in the target's owning group.
	CapabilityGroupAdmin
	// CapabilityGlobalAdmin requires a platform-level admin account.
	CapabilityGlobalAdmin
)

// Action identifies an operation on a resource type.
type Action struct {
	Resource string
	Op       string
}

// Prayer, group, request, and category actions gated by the policy table.
var (
	ActionPrayerUpdate   = Action{Resource: "prayer", Op: "update"}
	ActionPrayerDelete   = Action{Resource: "prayer", Op: "delete"}
	ActionGroupUpdate    = Action{Resource: "group", Op: "update"}
	ActionGroupDelete    = Action{Resource: "group", Op: "delete"}
	ActionRequestApprove = Action{Resource: "membership_request", Op: "approve"}
	ActionRequestReject  = Action{Resource: "membership_request", Op: "reject"}
	ActionCategoryCreate = Action{Resource: "category", Op: "create"}
	ActionCategoryUpdate = Action{Resource: "category", Op: "update"}
	ActionCategoryDelete = Action{Resource: "category", Op: "delete"}
)

// policy maps each protected action to its required capability. All mutating
// operations are authorized through this single table; handlers never branch
// on action names themselves.
var policy = map[Action]Capability{
	ActionPrayerUpdate:   CapabilityGroupAdmin,
	ActionPrayerDelete:   CapabilityGroupAdmin,
	ActionGroupUpdate:    CapabilityGroupAdmin,
	ActionGroupDelete:    CapabilityGroupAdmin,
	ActionRequestApprove: CapabilityGroupAdmin,
	ActionRequestReject:  CapabilityGroupAdmin,
	ActionCategoryCreate: CapabilityGlobalAdmin,
	ActionCategoryUpdate: CapabilityGlobalAdmin,
	ActionCategoryDelete: CapabilityGlobalAdmin,
}

// GroupScoped is implemented by entities whose authorization is scoped to a
// group. Each entity type declares its own owning-group resolution (a prayer
// resolves to its group, a group to itself); the gate never probes fields.
type GroupScoped interface {
	OwningGroupID() (uint, bool)
}

// Gate evaluates the authorization policy for mutating operations. Both
// predicates are checked against the store at call time; nothing is cached.
type Gate struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGate returns a new authorization Gate.
func NewGate(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *Gate {
	return &Gate{groupRepo: groupRepo, userRepo: userRepo}
}

// IsGroupAdmin reports whether the actor holds the admin role in the group.
func (g *Gate) IsGroupAdmin(ctx context.Context, actorID, groupID uint) (bool, error) {
	membership, err := g.groupRepo.GetMembership(ctx, groupID, actorID)
	if err != nil {
		return false, err
	}
	return membership != nil && membership.Role == models.GroupRoleAdmin, nil
}

// IsGlobalAdminCapable reports whether the actor's account-level role grants
// platform-wide write access. This is independent of any group role.
func (g *Gate) IsGlobalAdminCapable(ctx context.Context, actorID uint) (bool, error) {
	user, err := g.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}
	return user.IsAdminCapable(), nil
}

// Require evaluates the policy entry for the action against the target and
// returns Forbidden when the actor lacks the required capability. Actions
// absent from the policy table only require authentication. target may be
// nil for actions whose capability is not group-scoped.
func (g *Gate) Require(ctx context.Context, actorID uint, action Action, target GroupScoped) error {
	capability, ok := policy[action]
	if !ok || capability == CapabilityNone {
		return nil
	}

	switch capability {
	case CapabilityGlobalAdmin:
		allowed, err := g.IsGlobalAdminCapable(ctx, actorID)
		if err != nil {
			return err
		}
		if !allowed {
			return models.NewForbiddenError("Administrator role required")
		}
		return nil

	case CapabilityGroupAdmin:
		if target == nil {
			return models.NewForbiddenError("Group admin role required")
		}
		groupID, scoped := target.OwningGroupID()
		if !scoped {
			// An entity with no owning group has nobody holding the
			// group-admin capability for it.
			return models.NewForbiddenError("Group admin role required")
		}
		allowed, err := g.IsGroupAdmin(ctx, actorID, groupID)
		if err != nil {
			return err
		}
		if !allowed {
			return models.NewForbiddenError("Group admin role required")
		}
		return nil
	}

	return nil
}
