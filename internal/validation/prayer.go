package validation

import (
	"fmt"
	"strings"

	"prayerhub/internal/models"
)

// ValidatePrayerTitle checks prayer title presence and length limits.
func ValidatePrayerTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title must not exceed 200 characters")
	}
	return nil
}

// ValidatePrayerContent checks prayer content presence.
func ValidatePrayerContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ValidatePrayerStatus checks the status is a known lifecycle state.
func ValidatePrayerStatus(status models.PrayerStatus) error {
	switch status {
	case models.PrayerStatusActive, models.PrayerStatusAnswered, models.PrayerStatusArchived:
		return nil
	}
	return fmt.Errorf("status must be one of: active, answered, archived")
}

// ValidatePrivacyLevel checks the privacy level is a known value.
//
// Note: no cross-field consistency is enforced between privacy_level and
// group; a group-level prayer without a group is accepted as-is.
func ValidatePrivacyLevel(level models.PrivacyLevel) error {
	switch level {
	case models.PrivacyPublic, models.PrivacyPrivate, models.PrivacyGroup:
		return nil
	}
	return fmt.Errorf("privacy_level must be one of: public, private, group")
}

// ValidateGroupName checks group name presence and length limits.
func ValidateGroupName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("name must not exceed 200 characters")
	}
	return nil
}

// ValidateCategoryName checks category name presence and length limits.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name must not exceed 100 characters")
	}
	return nil
}
