package models

import "time"

// PrayerCategory groups prayers under a named topic. Categories are readable
// by anyone; only admin-capable accounts may create or change them.
type PrayerCategory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	CreatedByUserID *uint     `json:"created_by_user_id"`
	CreatedByUser   *User     `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:SET NULL" json:"created_by_user,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (PrayerCategory) TableName() string {
	return "prayer_categories"
}
