package seed

import (
	"prayerhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInCategory is a permanent system category.
type BuiltInCategory struct {
	Name        string
	Description string
}

// BuiltInCategories defines the default prayer categories. Seeding upserts
// them by name, so re-running is safe.
var BuiltInCategories = []BuiltInCategory{
	{Name: "Health", Description: "Healing, illness, and recovery."},
	{Name: "Family", Description: "Marriages, children, and family life."},
	{Name: "Guidance", Description: "Decisions, direction, and discernment."},
	{Name: "Thanksgiving", Description: "Gratitude and answered prayers."},
	{Name: "Grief", Description: "Loss, mourning, and comfort."},
	{Name: "Work", Description: "Jobs, finances, and provision."},
	{Name: "Community", Description: "Churches, neighborhoods, and outreach."},
	{Name: "Protection", Description: "Safety, travel, and those who serve."},
}

// Categories seeds the permanent built-in prayer categories.
func Categories(db *gorm.DB) error {
	for _, item := range BuiltInCategories {
		category := models.PrayerCategory{
			Name:        item.Name,
			Description: item.Description,
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description"}),
		}).Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
