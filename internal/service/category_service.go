package service

import (
	"context"

	"prayerhub/internal/models"
	"prayerhub/internal/repository"
	"prayerhub/internal/validation"
)

// CategoryService provides prayer-category business logic. Reads are open to
// any authenticated user; writes require global admin capability.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	gate         *Gate
}

// NewCategoryService returns a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, gate *Gate) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, gate: gate}
}

// CategoryInput carries the fields accepted when creating a category.
type CategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput carries the fields accepted when updating a category.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

func (s *CategoryService) List(ctx context.Context) ([]models.PrayerCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.PrayerCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// Create stores a new category and records its creator.
func (s *CategoryService) Create(ctx context.Context, actorID uint, input CategoryInput) (*models.PrayerCategory, error) {
	if err := s.gate.Require(ctx, actorID, ActionCategoryCreate, nil); err != nil {
		return nil, err
	}
	if err := validation.ValidateCategoryName(input.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := &models.PrayerCategory{
		Name:            input.Name,
		Description:     input.Description,
		CreatedByUserID: &actorID,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id, actorID uint, input UpdateCategoryInput) (*models.PrayerCategory, error) {
	if err := s.gate.Require(ctx, actorID, ActionCategoryUpdate, nil); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validation.ValidateCategoryName(*input.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Prayers referencing it are detached, not
// deleted, by the database's SET NULL rule.
func (s *CategoryService) Delete(ctx context.Context, id, actorID uint) error {
	if err := s.gate.Require(ctx, actorID, ActionCategoryDelete, nil); err != nil {
		return err
	}

	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
