package models

import "time"

// GroupRole defines a member's role inside a group.
type GroupRole string

const (
	// GroupRoleMember is the default membership role.
	GroupRoleMember GroupRole = "member"
	// GroupRoleAdmin may manage the group, its prayers, and its requests.
	GroupRoleAdmin GroupRole = "admin"
	// GroupRoleModerator is reserved for delegated moderation duties.
	GroupRoleModerator GroupRole = "moderator"
)

// GroupMembership maps users to groups and tracks role. The composite
// primary key guarantees at most one membership row per (group, user) pair.
type GroupMembership struct {
	GroupID  uint      `gorm:"primaryKey;autoIncrement:false" json:"group_id"`
	Group    *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
	UserID   uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Role     GroupRole `gorm:"type:varchar(10);not null;default:'member'" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
