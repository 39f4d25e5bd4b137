package services

import (
	"time"

	"budgetflow/internal/models"
	"budgetflow/internal/pagination"
)

// ProfileUpdateFields holds optional profile fields for partial updates.
// Nil pointers leave the current value untouched.
type ProfileUpdateFields struct {
	Name           *string
	Age            *int
	Sex            *models.Sex
	Salary         *int64
	BusinessIncome *int64
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
	UpdateProfile(userID uint, fields ProfileUpdateFields) (*models.User, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Type      *models.TransactionType
	Category  *string
	MinAmount *int64
	MaxAmount *int64
}

// TransactionUpdateFields holds optional fields for partial transaction
// updates. Nil pointers leave the current value untouched.
type TransactionUpdateFields struct {
	Type        *models.TransactionType
	Amount      *int64
	Category    *string
	Description *string
	Date        *time.Time
}

// CategorySpend is one category's expense total within a group summary.
type CategorySpend struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// MemberSpend is one member's expense total within a group summary.
type MemberSpend struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Total  int64  `json:"total"`
}

// GroupSummary aggregates a group's transactions by category and member.
type GroupSummary struct {
	TotalIncome  int64           `json:"total_income"`
	TotalExpense int64           `json:"total_expense"`
	ByCategory   []CategorySpend `json:"by_category"`
	ByMember     []MemberSpend   `json:"by_member"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, groupID *uint, transactionType models.TransactionType, amount int64, category, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetGroupTransactions(userID, groupID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	GetGroupSummary(userID, groupID uint) (*GroupSummary, error)
}

// BudgetItem is one category limit in a bulk budget replacement.
type BudgetItem struct {
	Category string
	Amount   int64
	Percent  *float64
}

// BudgetUsage pairs a budget with its derived spending.
type BudgetUsage struct {
	models.Budget
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID uint, groupID *uint, category string, amount int64, percent *float64) (*models.Budget, error)
	GetUserBudgets(userID uint) ([]BudgetUsage, error)
	GetGroupBudgets(userID, groupID uint) ([]BudgetUsage, error)
	UpdateBudget(userID, budgetID uint, amount *int64, percent *float64) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	ReplaceUserBudgets(userID uint, items []BudgetItem) ([]models.Budget, error)
}

// RoleInfo describes the caller's standing within a group.
type RoleInfo struct {
	Role      models.MemberRole `json:"role"`
	IsMember  bool              `json:"is_member"`
	IsAdmin   bool              `json:"is_admin"`
	IsCreator bool              `json:"is_creator"`
}

// GroupServicer defines the contract for group and membership business logic.
type GroupServicer interface {
	CreateGroup(creatorID uint, name string, inviteEmails []string) (*models.Group, int, error)
	GetUserGroups(userID uint) ([]models.Group, error)
	GetGroupByID(userID, groupID uint) (*models.Group, error)
	GetMembers(userID, groupID uint) ([]models.GroupMember, error)
	GetRole(userID, groupID uint) (*RoleInfo, error)
	InviteMembers(actorID, groupID uint, emails []string) (int, error)
	AcceptInvite(userID, groupID uint, token string) (*models.Group, error)
	PromoteMember(actorID, groupID, memberUserID uint) error
	DemoteMember(actorID, groupID, memberUserID uint) error
	RemoveMember(actorID, groupID, memberUserID uint) error
	LeaveGroup(userID, groupID uint) error
	DeleteGroup(actorID, groupID uint) error
}

// ChatReply is the assistant's response to one chat message.
type ChatReply struct {
	Reply            string `json:"reply"`
	TransactionAdded bool   `json:"transactionAdded"`
}

// ChatServicer defines the contract for the chat assistant.
type ChatServicer interface {
	HandleMessage(userID uint, message string) (*ChatReply, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
