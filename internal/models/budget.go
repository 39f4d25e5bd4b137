package models

// Budget is a per-category spending limit owned by a user, or by a group
// when GroupID is set. Limits are stored in minor units (cents). The
// "used" amount is never stored; it is derived at read time by summing
// expense transactions whose category matches case-insensitively.
type Budget struct {
	Base
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	GroupID  *uint    `gorm:"index" json:"group_id,omitempty"`
	Category string   `gorm:"not null" json:"category"`
	Amount   int64    `gorm:"type:bigint;not null" json:"amount"`
	Percent  *float64 `json:"percent,omitempty"`
}
