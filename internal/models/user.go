package models

import "time"

// Sex is the self-reported sex code on a user profile.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
	SexOther  Sex = "O"
)

// User represents the user model in the database.
// Income amounts are stored in minor units (cents).
type User struct {
	Base
	Name            string `gorm:"not null" json:"name"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	Password        string `gorm:"not null" json:"-"`
	Age             *int   `json:"age,omitempty"`
	Sex             Sex    `gorm:"size:1" json:"sex,omitempty"`
	Salary          int64  `gorm:"default:0" json:"salary"`
	BusinessIncome  int64  `gorm:"default:0" json:"business_income"`
	TotalIncome     int64  `gorm:"default:0" json:"total_income"`
	ProfileComplete bool   `gorm:"default:false" json:"profile_complete"`

	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}
