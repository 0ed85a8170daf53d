package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prayerhub/internal/models"
)

func newGroupService(groupRepo *groupRepoStub, requestRepo *requestRepoStub) *GroupService {
	return NewGroupService(groupRepo, requestRepo, NewGate(groupRepo, noopUserRepo()))
}

func TestGroupService_Create_DefaultsToPrivate(t *testing.T) {
	t.Parallel()

	groups := noopGroupRepo()
	var created *models.Group
	groups.createWithAdminFn = func(_ context.Context, group *models.Group) error {
		group.ID = 11
		created = group
		return nil
	}
	svc := newGroupService(groups, noopRequestRepo())

	group, err := svc.Create(context.Background(), 4, CreateGroupInput{Name: "Tuesday Evening"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, group.IsPrivate)
	assert.Equal(t, uint(4), group.CreatedByUserID)
	assert.Equal(t, uint(11), group.ID)
}

func TestGroupService_Create_BadName(t *testing.T) {
	t.Parallel()

	groups := noopGroupRepo()
	groups.createWithAdminFn = func(_ context.Context, _ *models.Group) error {
		t.Fatal("CreateWithAdmin must not run for invalid input")
		return nil
	}
	svc := newGroupService(groups, noopRequestRepo())

	_, err := svc.Create(context.Background(), 4, CreateGroupInput{Name: "   "})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

// Join checks run in a fixed order: existence, then membership, then privacy.
// An existing member of a private group gets Conflict, not Forbidden.
func TestGroupService_Join_ChecksMembershipBeforePrivacy(t *testing.T) {
	t.Parallel()

	groups := membershipByRole(models.GroupRoleMember)
	groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return &models.Group{ID: id, IsPrivate: true}, nil
	}
	svc := newGroupService(groups, noopRequestRepo())

	_, err := svc.Join(context.Background(), 9, 2)
	assertConflictError(t, err)
}

func TestGroupService_Join_PrivateGroupForbidden(t *testing.T) {
	t.Parallel()

	groups := membershipByRole("")
	groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return &models.Group{ID: id, IsPrivate: true}, nil
	}
	groups.createMembershipFn = func(_ context.Context, _ *models.GroupMembership) error {
		t.Fatal("no membership may be created for a private group join")
		return nil
	}
	svc := newGroupService(groups, noopRequestRepo())

	_, err := svc.Join(context.Background(), 9, 2)
	assertForbiddenError(t, err)
}

func TestGroupService_Join_PublicGroup(t *testing.T) {
	t.Parallel()

	groups := membershipByRole("")
	groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return &models.Group{ID: id, IsPrivate: false}, nil
	}
	svc := newGroupService(groups, noopRequestRepo())

	membership, err := svc.Join(context.Background(), 9, 2)
	require.NoError(t, err)
	assert.Equal(t, models.GroupRoleMember, membership.Role)
	assert.Equal(t, uint(9), membership.GroupID)
	assert.Equal(t, uint(2), membership.UserID)
}

// RequestJoin orders its checks the same way: existence, membership, then the
// public-group state check before the pending-duplicate check.
func TestGroupService_RequestJoin_PublicGroupInvalidState(t *testing.T) {
	t.Parallel()

	groups := membershipByRole("")
	groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return &models.Group{ID: id, IsPrivate: false}, nil
	}
	requests := noopRequestRepo()
	requests.hasPendingFn = func(_ context.Context, _, _ uint) (bool, error) {
		t.Fatal("pending check must not run for a public group")
		return false, nil
	}
	svc := newGroupService(groups, requests)

	_, err := svc.RequestJoin(context.Background(), 9, 2, "")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeInvalidState, appErr.Code)
}

func TestGroupService_RequestJoin_DuplicatePending(t *testing.T) {
	t.Parallel()

	groups := membershipByRole("")
	groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return &models.Group{ID: id, IsPrivate: true}, nil
	}
	requests := noopRequestRepo()
	requests.hasPendingFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }
	svc := newGroupService(groups, requests)

	_, err := svc.RequestJoin(context.Background(), 9, 2, "please")
	assertConflictError(t, err)
}

func TestGroupService_RequestJoin_FilesPendingRequest(t *testing.T) {
	t.Parallel()

	groups := membershipByRole("")
	groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return &models.Group{ID: id, IsPrivate: true}, nil
	}
	requests := noopRequestRepo()
	requests.createFn = func(_ context.Context, request *models.MembershipRequest) error {
		request.ID = 31
		return nil
	}
	svc := newGroupService(groups, requests)

	request, err := svc.RequestJoin(context.Background(), 9, 2, "new to town")
	require.NoError(t, err)
	assert.Equal(t, models.MembershipRequestStatusPending, request.Status)
	assert.Equal(t, "new to town", request.Reason)
	assert.Equal(t, uint(31), request.ID)
}

func TestGroupService_ApproveRequest_RequiresGroupAdmin(t *testing.T) {
	t.Parallel()

	requests := noopRequestRepo()
	requests.getByIDFn = func(_ context.Context, id uint) (*models.MembershipRequest, error) {
		return &models.MembershipRequest{ID: id, GroupID: 9, UserID: 2}, nil
	}
	requests.approveFn = func(_ context.Context, _ *models.MembershipRequest) error {
		t.Fatal("Approve must not run for a non-admin actor")
		return nil
	}
	svc := newGroupService(membershipByRole(models.GroupRoleMember), requests)

	_, err := svc.ApproveRequest(context.Background(), 5, 3)
	assertForbiddenError(t, err)
}

func TestGroupService_ApproveRequest_AdminApproves(t *testing.T) {
	t.Parallel()

	requests := noopRequestRepo()
	requests.getByIDFn = func(_ context.Context, id uint) (*models.MembershipRequest, error) {
		return &models.MembershipRequest{ID: id, GroupID: 9, UserID: 2, Status: models.MembershipRequestStatusPending}, nil
	}
	approved := false
	requests.approveFn = func(_ context.Context, request *models.MembershipRequest) error {
		approved = true
		request.Status = models.MembershipRequestStatusApproved
		return nil
	}
	svc := newGroupService(membershipByRole(models.GroupRoleAdmin), requests)

	request, err := svc.ApproveRequest(context.Background(), 5, 3)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Equal(t, models.MembershipRequestStatusApproved, request.Status)
}

func TestGroupService_RejectRequest_RequiresGroupAdmin(t *testing.T) {
	t.Parallel()

	requests := noopRequestRepo()
	requests.getByIDFn = func(_ context.Context, id uint) (*models.MembershipRequest, error) {
		// The requester themselves is not an admin of the group.
		return &models.MembershipRequest{ID: id, GroupID: 9, UserID: 3}, nil
	}
	svc := newGroupService(membershipByRole(""), requests)

	_, err := svc.RejectRequest(context.Background(), 5, 3)
	assertForbiddenError(t, err)
}
