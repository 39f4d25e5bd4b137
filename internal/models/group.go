package models

import "time"

// MemberRole is a member's role within a group.
type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// MemberStatus is the membership status of a group member.
type MemberStatus string

const (
	MemberStatusActive MemberStatus = "active"
)

// InviteStatus is the lifecycle status of a group invite.
// "declined" exists for schema parity with the invite model but no
// operation sets it.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// Group represents a shared budgeting group (household, trip, team).
// The creator is always an active admin member and can never be demoted
// or removed.
type Group struct {
	Base
	Name      string `gorm:"not null" json:"name"`
	CreatedBy uint   `gorm:"not null;index" json:"created_by"`

	Members []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Invites []GroupInvite `gorm:"foreignKey:GroupID" json:"invites,omitempty"`

	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// GroupMember is one (group, user) membership row. Storing members as
// child rows instead of an embedded document lets role changes and
// removals be single-row conditional updates.
type GroupMember struct {
	Base
	GroupID uint         `gorm:"not null;uniqueIndex:idx_group_member" json:"group_id"`
	UserID  uint         `gorm:"not null;uniqueIndex:idx_group_member" json:"user_id"`
	Role    MemberRole   `gorm:"not null;default:member" json:"role"`
	Status  MemberStatus `gorm:"not null;default:active" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// GroupInvite is a pending or redeemed invitation into a group. The token
// is a 32-byte random value in hex; redemption is one-shot and expires
// seven days after issuance.
type GroupInvite struct {
	Base
	GroupID   uint         `gorm:"not null;index" json:"group_id"`
	Email     string       `gorm:"not null" json:"email"`
	Token     string       `gorm:"size:64;uniqueIndex" json:"-"`
	Status    InviteStatus `gorm:"not null;default:pending" json:"status"`
	InvitedAt time.Time    `gorm:"not null" json:"invited_at"`
	ExpiresAt time.Time    `gorm:"not null" json:"expires_at"`
}
