package service

import (
	"context"

	"prayerhub/internal/middleware"
	"prayerhub/internal/models"
	"prayerhub/internal/repository"
	"prayerhub/internal/validation"
)

// PrayerService provides prayer lifecycle and intercession business logic.
type PrayerService struct {
	prayerRepo repository.PrayerRepository
	gate       *Gate
}

// NewPrayerService returns a new PrayerService.
func NewPrayerService(prayerRepo repository.PrayerRepository, gate *Gate) *PrayerService {
	return &PrayerService{
		prayerRepo: prayerRepo,
		gate:       gate,
	}
}

// CreatePrayerInput carries the fields accepted when creating a prayer.
type CreatePrayerInput struct {
	Title        string
	Content      string
	CategoryID   *uint
	Status       models.PrayerStatus
	PrivacyLevel models.PrivacyLevel
	GroupID      *uint
	IsAnonymous  bool
}

// UpdatePrayerInput carries the fields accepted when updating a prayer.
// Nil pointers leave the current value unchanged.
type UpdatePrayerInput struct {
	Title        *string
	Content      *string
	CategoryID   *uint
	Status       *models.PrayerStatus
	PrivacyLevel *models.PrivacyLevel
	IsAnonymous  *bool
}

// List returns the prayers visible to the actor, newest first.
func (s *PrayerService) List(ctx context.Context, actorID uint, limit, offset int) ([]models.Prayer, error) {
	return s.prayerRepo.ListVisible(ctx, actorID, limit, offset)
}

// Get returns the prayer if it is visible to the actor, NotFound otherwise.
func (s *PrayerService) Get(ctx context.Context, id, actorID uint) (*models.Prayer, error) {
	return s.prayerRepo.GetVisibleByID(ctx, id, actorID)
}

// Create stores a new prayer. The actor always becomes the author; the
// payload cannot override authorship. Privacy/group consistency is not
// cross-checked, matching the permissive creation surface.
func (s *PrayerService) Create(ctx context.Context, actorID uint, input CreatePrayerInput) (*models.Prayer, error) {
	if err := validation.ValidatePrayerTitle(input.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePrayerContent(input.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	status := input.Status
	if status == "" {
		status = models.PrayerStatusActive
	}
	if err := validation.ValidatePrayerStatus(status); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	privacy := input.PrivacyLevel
	if privacy == "" {
		privacy = models.PrivacyPublic
	}
	if err := validation.ValidatePrivacyLevel(privacy); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	prayer := &models.Prayer{
		Title:        input.Title,
		Content:      input.Content,
		AuthorID:     actorID,
		CategoryID:   input.CategoryID,
		Status:       status,
		PrivacyLevel: privacy,
		GroupID:      input.GroupID,
		IsAnonymous:  input.IsAnonymous,
	}
	if err := s.prayerRepo.Create(ctx, prayer); err != nil {
		return nil, err
	}
	return s.prayerRepo.GetByID(ctx, prayer.ID)
}

// Update modifies a prayer. Requires the group-admin capability for the
// prayer's owning group; authorship alone does not grant edit rights.
func (s *PrayerService) Update(ctx context.Context, id, actorID uint, input UpdatePrayerInput) (*models.Prayer, error) {
	prayer, err := s.prayerRepo.GetVisibleByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Require(ctx, actorID, ActionPrayerUpdate, prayer); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := validation.ValidatePrayerTitle(*input.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		prayer.Title = *input.Title
	}
	if input.Content != nil {
		if err := validation.ValidatePrayerContent(*input.Content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		prayer.Content = *input.Content
	}
	if input.CategoryID != nil {
		prayer.CategoryID = input.CategoryID
	}
	if input.Status != nil {
		if err := validation.ValidatePrayerStatus(*input.Status); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		prayer.Status = *input.Status
	}
	if input.PrivacyLevel != nil {
		if err := validation.ValidatePrivacyLevel(*input.PrivacyLevel); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		prayer.PrivacyLevel = *input.PrivacyLevel
	}
	if input.IsAnonymous != nil {
		prayer.IsAnonymous = *input.IsAnonymous
	}

	if err := s.prayerRepo.Update(ctx, prayer); err != nil {
		return nil, err
	}
	return s.prayerRepo.GetByID(ctx, prayer.ID)
}

// Delete removes a prayer. Same capability requirement as Update.
func (s *PrayerService) Delete(ctx context.Context, id, actorID uint) error {
	prayer, err := s.prayerRepo.GetVisibleByID(ctx, id, actorID)
	if err != nil {
		return err
	}

	if err := s.gate.Require(ctx, actorID, ActionPrayerDelete, prayer); err != nil {
		return err
	}

	return s.prayerRepo.Delete(ctx, prayer.ID)
}

// Intercede records one intercession for the prayer and returns the updated
// count. Any actor who can read the prayer may intercede, as many times as
// they wish; each call adds exactly one.
func (s *PrayerService) Intercede(ctx context.Context, id, actorID uint) (uint, error) {
	if _, err := s.prayerRepo.GetVisibleByID(ctx, id, actorID); err != nil {
		return 0, err
	}

	count, err := s.prayerRepo.Intercede(ctx, id)
	if err != nil {
		return 0, err
	}
	middleware.Intercessions.Inc()
	return count, nil
}
