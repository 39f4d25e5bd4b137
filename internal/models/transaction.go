package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction. A nil GroupID means the
// transaction is personal; a set GroupID attributes it to the whole group.
// Amounts are stored in minor units (cents). Categories are stored
// lower-cased so usage lookups stay case-insensitive.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	GroupID     *uint           `gorm:"index" json:"group_id,omitempty"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Category    string          `gorm:"not null;index" json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Group *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
