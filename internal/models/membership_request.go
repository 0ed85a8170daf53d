package models

import "time"

// MembershipRequestStatus defines lifecycle states for join requests.
type MembershipRequestStatus string

const (
	// MembershipRequestStatusPending indicates the request awaits review.
	MembershipRequestStatusPending MembershipRequestStatus = "pending"
	// MembershipRequestStatusApproved indicates the request was accepted.
	MembershipRequestStatusApproved MembershipRequestStatus = "approved"
	// MembershipRequestStatusRejected indicates the request was declined.
	MembershipRequestStatusRejected MembershipRequestStatus = "rejected"
)

// MembershipRequest is a user's request to join a private group. Approved and
// rejected are terminal; both stamp ProcessedAt. A rejected request does not
// block the user from submitting a new one.
type MembershipRequest struct {
	ID          uint                    `gorm:"primaryKey" json:"id"`
	GroupID     uint                    `gorm:"not null;index" json:"group_id"`
	Group       *Group                  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
	UserID      uint                    `gorm:"not null;index" json:"user_id"`
	User        *User                   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Status      MembershipRequestStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	Reason      string                  `gorm:"type:text" json:"reason"`
	CreatedAt   time.Time               `json:"created_at"`
	ProcessedAt *time.Time              `json:"processed_at"`
}

// OwningGroupID resolves the group that scopes authorization decisions for
// this request: the group being joined.
func (r *MembershipRequest) OwningGroupID() (uint, bool) {
	return r.GroupID, true
}

// IsPending reports whether the request still awaits review.
func (r *MembershipRequest) IsPending() bool {
	return r.Status == MembershipRequestStatusPending
}
