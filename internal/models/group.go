package models

import "time"

// Group is a prayer group. Private groups are joinable only through the
// membership-request workflow; public groups allow direct joins.
//
// A group always has at least one admin membership: the creator's, inserted
// in the same transaction that creates the group.
type Group struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	IsPrivate       bool      `gorm:"not null;default:true" json:"is_private"`
	CreatedByUserID uint      `gorm:"not null;index" json:"created_by_user_id"`
	CreatedByUser   *User     `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:CASCADE" json:"created_by_user,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// OwningGroupID resolves a group's own authorization scope: itself.
func (g *Group) OwningGroupID() (uint, bool) {
	return g.ID, true
}
