package models

import "time"

// PrayerStatus defines the lifecycle state of a prayer request.
type PrayerStatus string

const (
	// PrayerStatusActive indicates the prayer is open for intercession.
	PrayerStatusActive PrayerStatus = "active"
	// PrayerStatusAnswered indicates the author marked the prayer answered.
	PrayerStatusAnswered PrayerStatus = "answered"
	// PrayerStatusArchived indicates the prayer is retired from feeds.
	PrayerStatusArchived PrayerStatus = "archived"
)

// PrivacyLevel controls who may read a prayer.
type PrivacyLevel string

const (
	// PrivacyPublic makes the prayer visible to every authenticated user.
	PrivacyPublic PrivacyLevel = "public"
	// PrivacyPrivate restricts visibility to the author.
	PrivacyPrivate PrivacyLevel = "private"
	// PrivacyGroup restricts visibility to members of the prayer's group.
	PrivacyGroup PrivacyLevel = "group"
)

// Prayer is a prayer request. PrayerCount is incremented only through the
// intercede operation, never by direct edit.
type Prayer struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"size:200;not null" json:"title"`
	Content      string          `gorm:"type:text;not null" json:"content"`
	AuthorID     uint            `gorm:"not null;index" json:"author_id"`
	Author       *User           `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	CategoryID   *uint           `json:"category_id"`
	Category     *PrayerCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Status       PrayerStatus    `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	PrivacyLevel PrivacyLevel    `gorm:"type:varchar(10);not null;default:'public';index" json:"privacy_level"`
	GroupID      *uint           `gorm:"index" json:"group_id"`
	Group        *Group          `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
	PrayerCount  uint            `gorm:"not null;default:0" json:"prayer_count"`
	IsAnonymous  bool            `gorm:"not null;default:false" json:"is_anonymous"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OwningGroupID resolves the group that scopes authorization decisions for
// this prayer. The second return is false when the prayer has no group.
func (p *Prayer) OwningGroupID() (uint, bool) {
	if p.GroupID == nil {
		return 0, false
	}
	return *p.GroupID, true
}

// AuthorName returns the display name for the prayer's author, honoring
// the anonymity flag.
func (p *Prayer) AuthorName() string {
	if p.IsAnonymous {
		return "Anonymous"
	}
	if p.Author == nil {
		return ""
	}
	if p.Author.FullName != "" {
		return p.Author.FullName
	}
	return p.Author.Email
}
