package service

import (
	"context"

	"prayerhub/internal/models"
)

// groupRepoStub is a stub for repository.GroupRepository.
type groupRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.Group, error)
	getVisibleByIDFn   func(context.Context, uint, uint) (*models.Group, error)
	listVisibleFn      func(context.Context, uint, int, int) ([]models.Group, error)
	createWithAdminFn  func(context.Context, *models.Group) error
	updateFn           func(context.Context, *models.Group) error
	deleteFn           func(context.Context, uint) error
	getMembershipFn    func(context.Context, uint, uint) (*models.GroupMembership, error)
	createMembershipFn func(context.Context, *models.GroupMembership) error
	listMembersFn      func(context.Context, uint) ([]models.GroupMembership, error)
	countMembersFn     func(context.Context, uint) (int64, error)
}

func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetVisibleByID(ctx context.Context, id, actorID uint) (*models.Group, error) {
	return s.getVisibleByIDFn(ctx, id, actorID)
}
func (s *groupRepoStub) ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.Group, error) {
	return s.listVisibleFn(ctx, actorID, limit, offset)
}
func (s *groupRepoStub) CreateWithAdmin(ctx context.Context, group *models.Group) error {
	return s.createWithAdminFn(ctx, group)
}
func (s *groupRepoStub) Update(ctx context.Context, group *models.Group) error {
	return s.updateFn(ctx, group)
}
func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *groupRepoStub) GetMembership(ctx context.Context, groupID, userID uint) (*models.GroupMembership, error) {
	return s.getMembershipFn(ctx, groupID, userID)
}
func (s *groupRepoStub) CreateMembership(ctx context.Context, membership *models.GroupMembership) error {
	return s.createMembershipFn(ctx, membership)
}
func (s *groupRepoStub) ListMembers(ctx context.Context, groupID uint) ([]models.GroupMembership, error) {
	return s.listMembersFn(ctx, groupID)
}
func (s *groupRepoStub) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	return s.countMembersFn(ctx, groupID)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Group, error) {
			return &models.Group{ID: id}, nil
		},
		getVisibleByIDFn: func(_ context.Context, id, _ uint) (*models.Group, error) {
			return &models.Group{ID: id}, nil
		},
		listVisibleFn:      func(_ context.Context, _ uint, _, _ int) ([]models.Group, error) { return nil, nil },
		createWithAdminFn:  func(_ context.Context, _ *models.Group) error { return nil },
		updateFn:           func(_ context.Context, _ *models.Group) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
		getMembershipFn:    func(_ context.Context, _, _ uint) (*models.GroupMembership, error) { return nil, nil },
		createMembershipFn: func(_ context.Context, _ *models.GroupMembership) error { return nil },
		listMembersFn:      func(_ context.Context, _ uint) ([]models.GroupMembership, error) { return nil, nil },
		countMembersFn:     func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// prayerRepoStub is a stub for repository.PrayerRepository.
type prayerRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.Prayer, error)
	getVisibleByIDFn func(context.Context, uint, uint) (*models.Prayer, error)
	listVisibleFn    func(context.Context, uint, int, int) ([]models.Prayer, error)
	createFn         func(context.Context, *models.Prayer) error
	updateFn         func(context.Context, *models.Prayer) error
	deleteFn         func(context.Context, uint) error
	intercedeFn      func(context.Context, uint) (uint, error)
}

func (s *prayerRepoStub) GetByID(ctx context.Context, id uint) (*models.Prayer, error) {
	return s.getByIDFn(ctx, id)
}
func (s *prayerRepoStub) GetVisibleByID(ctx context.Context, id, actorID uint) (*models.Prayer, error) {
	return s.getVisibleByIDFn(ctx, id, actorID)
}
func (s *prayerRepoStub) ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.Prayer, error) {
	return s.listVisibleFn(ctx, actorID, limit, offset)
}
func (s *prayerRepoStub) Create(ctx context.Context, prayer *models.Prayer) error {
	return s.createFn(ctx, prayer)
}
func (s *prayerRepoStub) Update(ctx context.Context, prayer *models.Prayer) error {
	return s.updateFn(ctx, prayer)
}
func (s *prayerRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *prayerRepoStub) Intercede(ctx context.Context, id uint) (uint, error) {
	return s.intercedeFn(ctx, id)
}

func noopPrayerRepo() *prayerRepoStub {
	return &prayerRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Prayer, error) {
			return &models.Prayer{ID: id}, nil
		},
		getVisibleByIDFn: func(_ context.Context, id, _ uint) (*models.Prayer, error) {
			return &models.Prayer{ID: id}, nil
		},
		listVisibleFn: func(_ context.Context, _ uint, _, _ int) ([]models.Prayer, error) { return nil, nil },
		createFn:      func(_ context.Context, _ *models.Prayer) error { return nil },
		updateFn:      func(_ context.Context, _ *models.Prayer) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
		intercedeFn:   func(_ context.Context, _ uint) (uint, error) { return 1, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.UserRoleUser}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		listFn:       func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// requestRepoStub is a stub for repository.MembershipRequestRepository.
type requestRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.MembershipRequest, error)
	getVisibleByIDFn func(context.Context, uint, uint) (*models.MembershipRequest, error)
	listVisibleFn    func(context.Context, uint, int, int) ([]models.MembershipRequest, error)
	hasPendingFn     func(context.Context, uint, uint) (bool, error)
	createFn         func(context.Context, *models.MembershipRequest) error
	approveFn        func(context.Context, *models.MembershipRequest) error
	rejectFn         func(context.Context, *models.MembershipRequest) error
}

func (s *requestRepoStub) GetByID(ctx context.Context, id uint) (*models.MembershipRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *requestRepoStub) GetVisibleByID(ctx context.Context, id, actorID uint) (*models.MembershipRequest, error) {
	return s.getVisibleByIDFn(ctx, id, actorID)
}
func (s *requestRepoStub) ListVisible(ctx context.Context, actorID uint, limit, offset int) ([]models.MembershipRequest, error) {
	return s.listVisibleFn(ctx, actorID, limit, offset)
}
func (s *requestRepoStub) HasPending(ctx context.Context, groupID, userID uint) (bool, error) {
	return s.hasPendingFn(ctx, groupID, userID)
}
func (s *requestRepoStub) Create(ctx context.Context, request *models.MembershipRequest) error {
	return s.createFn(ctx, request)
}
func (s *requestRepoStub) Approve(ctx context.Context, request *models.MembershipRequest) error {
	return s.approveFn(ctx, request)
}
func (s *requestRepoStub) Reject(ctx context.Context, request *models.MembershipRequest) error {
	return s.rejectFn(ctx, request)
}

func noopRequestRepo() *requestRepoStub {
	return &requestRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.MembershipRequest, error) {
			return &models.MembershipRequest{ID: id}, nil
		},
		getVisibleByIDFn: func(_ context.Context, id, _ uint) (*models.MembershipRequest, error) {
			return &models.MembershipRequest{ID: id}, nil
		},
		listVisibleFn: func(_ context.Context, _ uint, _, _ int) ([]models.MembershipRequest, error) { return nil, nil },
		hasPendingFn:  func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		createFn:      func(_ context.Context, _ *models.MembershipRequest) error { return nil },
		approveFn:     func(_ context.Context, _ *models.MembershipRequest) error { return nil },
		rejectFn:      func(_ context.Context, _ *models.MembershipRequest) error { return nil },
	}
}
