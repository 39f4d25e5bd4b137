package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetflow/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a personal transaction of the given type
// and amount (in cents), dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount int64, category string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGroupTransaction creates a group-scoped transaction.
func CreateTestGroupTransaction(t *testing.T, db *gorm.DB, userID, groupID uint, txType models.TransactionType, amount int64, category string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		GroupID:  &groupID,
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a personal budget for the given category (limit in cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, category string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGroup creates a group with the creator as an active admin member.
func CreateTestGroup(t *testing.T, db *gorm.DB, creatorID uint) *models.Group {
	t.Helper()

	group := &models.Group{
		Name:      fmt.Sprintf("Test Group %d", nextID()),
		CreatedBy: creatorID,
	}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to create test group: %v", err)
	}

	member := &models.GroupMember{
		GroupID: group.ID,
		UserID:  creatorID,
		Role:    models.RoleAdmin,
		Status:  models.MemberStatusActive,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create creator membership: %v", err)
	}
	return group
}

// AddTestMember adds a user to a group with the given role.
func AddTestMember(t *testing.T, db *gorm.DB, groupID, userID uint, role models.MemberRole) *models.GroupMember {
	t.Helper()

	member := &models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
		Status:  models.MemberStatusActive,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to add test member: %v", err)
	}
	return member
}

// CreateTestInvite creates a pending invite with a unique token, expiring
// in seven days.
func CreateTestInvite(t *testing.T, db *gorm.DB, groupID uint, email string) *models.GroupInvite {
	t.Helper()

	invite := &models.GroupInvite{
		GroupID:   groupID,
		Email:     email,
		Token:     fmt.Sprintf("%064d", nextID()),
		Status:    models.InviteStatusPending,
		InvitedAt: time.Now(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	if err := db.Create(invite).Error; err != nil {
		t.Fatalf("failed to create test invite: %v", err)
	}
	return invite
}
