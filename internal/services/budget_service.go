package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"budgetflow/internal/cache"
	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/logger"
	"budgetflow/internal/models"
)

// budgetUsageTTL bounds staleness of cached usage between invalidations.
const budgetUsageTTL = 5 * time.Minute

func userBudgetUsageKey(userID uint) string {
	return fmt.Sprintf("budget:usage:user:%d", userID)
}

func groupBudgetUsageKey(groupID uint) string {
	return fmt.Sprintf("budget:usage:group:%d", groupID)
}

// budgetService handles budget-related business logic.
type budgetService struct {
	db           *gorm.DB
	groupService GroupServicer
	cache        *cache.Cache
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, groupService GroupServicer, c *cache.Cache) BudgetServicer {
	return &budgetService{
		db:           db,
		groupService: groupService,
		cache:        c,
	}
}

// CreateBudget creates a per-category limit for the user, or for a group
// when groupID is set. Group budgets require the admin role. One budget
// per category per owner.
func (s *budgetService) CreateBudget(userID uint, groupID *uint, category string, amount int64, percent *float64) (*models.Budget, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if percent != nil && (*percent < 0 || *percent > 100) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "percent must be between 0 and 100")
	}

	if groupID != nil {
		role, err := s.groupService.GetRole(userID, *groupID)
		if err != nil {
			return nil, err
		}
		if !role.IsMember {
			return nil, apperrors.ErrNotGroupMember
		}
		if !role.IsAdmin {
			return nil, apperrors.ErrAdminRequired
		}
	}

	var count int64
	q := s.db.Model(&models.Budget{}).Where("category = ?", category)
	if groupID != nil {
		q = q.Where("group_id = ?", *groupID)
	} else {
		q = q.Where("user_id = ? AND group_id IS NULL", userID)
	}
	q.Count(&count)
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a budget for this category already exists")
	}

	budget := &models.Budget{
		UserID:   userID,
		GroupID:  groupID,
		Category: category,
		Amount:   amount,
		Percent:  percent,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.invalidate(userID, groupID)
	return budget, nil
}

// GetUserBudgets returns the user's personal budgets with derived
// usage. Results are cached until the next write.
func (s *budgetService) GetUserBudgets(userID uint) ([]BudgetUsage, error) {
	ctx := context.Background()
	key := userBudgetUsageKey(userID)

	var cached []BudgetUsage
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Get().Warnw("budget usage cache read failed", "error", err, "user_id", userID)
	} else if hit {
		return cached, nil
	}

	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND group_id IS NULL", userID).
		Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent, err := s.spentByCategory(s.db.Where("user_id = ? AND group_id IS NULL", userID))
	if err != nil {
		return nil, err
	}

	usage := attachUsage(budgets, spent)
	if err := s.cache.Set(ctx, key, usage, budgetUsageTTL); err != nil {
		logger.Get().Warnw("budget usage cache write failed", "error", err, "user_id", userID)
	}
	return usage, nil
}

// GetGroupBudgets returns a group's budgets with derived usage. The
// caller must be an active member.
func (s *budgetService) GetGroupBudgets(userID, groupID uint) ([]BudgetUsage, error) {
	role, err := s.groupService.GetRole(userID, groupID)
	if err != nil {
		return nil, err
	}
	if !role.IsMember {
		return nil, apperrors.ErrNotGroupMember
	}

	ctx := context.Background()
	key := groupBudgetUsageKey(groupID)

	var cached []BudgetUsage
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Get().Warnw("budget usage cache read failed", "error", err, "group_id", groupID)
	} else if hit {
		return cached, nil
	}

	var budgets []models.Budget
	if err := s.db.Where("group_id = ?", groupID).
		Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent, err := s.spentByCategory(s.db.Where("group_id = ?", groupID))
	if err != nil {
		return nil, err
	}

	usage := attachUsage(budgets, spent)
	if err := s.cache.Set(ctx, key, usage, budgetUsageTTL); err != nil {
		logger.Get().Warnw("budget usage cache write failed", "error", err, "group_id", groupID)
	}
	return usage, nil
}

// spentByCategory sums all expense transactions per category for the
// given owner scope.
func (s *budgetService) spentByCategory(scope *gorm.DB) (map[string]int64, error) {
	type categoryTotal struct {
		Category string
		Total    int64
	}
	var rows []categoryTotal
	if err := scope.Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("type = ?", models.TransactionTypeExpense).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent := make(map[string]int64, len(rows))
	for _, r := range rows {
		spent[strings.ToLower(r.Category)] = r.Total
	}
	return spent, nil
}

func attachUsage(budgets []models.Budget, spent map[string]int64) []BudgetUsage {
	usage := make([]BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		used := spent[strings.ToLower(b.Category)]
		usage = append(usage, BudgetUsage{
			Budget:    b,
			Used:      used,
			Remaining: b.Amount - used,
		})
	}
	return usage
}

// UpdateBudget changes a budget's limit and/or percent. Personal budgets
// are owner-only; group budgets require the admin role.
func (s *budgetService) UpdateBudget(userID, budgetID uint, amount *int64, percent *float64) (*models.Budget, error) {
	budget, err := s.findAuthorized(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		budget.Amount = *amount
	}
	if percent != nil {
		if *percent < 0 || *percent > 100 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "percent must be between 0 and 100")
		}
		budget.Percent = percent
	}

	if err := s.db.Save(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.invalidate(userID, budget.GroupID)
	return budget, nil
}

// DeleteBudget removes a budget. Personal budgets are owner-only; group
// budgets require the admin role.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	budget, err := s.findAuthorized(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.invalidate(userID, budget.GroupID)
	return nil
}

// ReplaceUserBudgets swaps the user's personal budgets for a new set in
// one database transaction. Used by onboarding, which submits the whole
// allocation at once.
func (s *budgetService) ReplaceUserBudgets(userID uint, items []BudgetItem) ([]models.Budget, error) {
	seen := make(map[string]bool, len(items))
	budgets := make([]models.Budget, 0, len(items))
	for _, item := range items {
		category := strings.ToLower(strings.TrimSpace(item.Category))
		if category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
		}
		if item.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		if item.Percent != nil && (*item.Percent < 0 || *item.Percent > 100) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "percent must be between 0 and 100")
		}
		if seen[category] {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "duplicate category: "+category)
		}
		seen[category] = true

		budgets = append(budgets, models.Budget{
			UserID:   userID,
			Category: category,
			Amount:   item.Amount,
			Percent:  item.Percent,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND group_id IS NULL", userID).
			Delete(&models.Budget{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(budgets) == 0 {
			return nil
		}
		if err := tx.Create(&budgets).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(userID, nil)
	return budgets, nil
}

// findAuthorized loads a budget and checks the caller may modify it.
func (s *budgetService) findAuthorized(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.First(&budget, budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if budget.GroupID == nil {
		if budget.UserID != userID {
			return nil, apperrors.ErrBudgetNotFound
		}
		return &budget, nil
	}

	role, err := s.groupService.GetRole(userID, *budget.GroupID)
	if err != nil {
		return nil, err
	}
	if !role.IsMember {
		return nil, apperrors.ErrNotGroupMember
	}
	if !role.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	return &budget, nil
}

func (s *budgetService) invalidate(userID uint, groupID *uint) {
	keys := []string{userBudgetUsageKey(userID)}
	if groupID != nil {
		keys = append(keys, groupBudgetUsageKey(*groupID))
	}
	if err := s.cache.Delete(context.Background(), keys...); err != nil {
		logger.Get().Warnw("failed to invalidate budget usage cache", "error", err, "user_id", userID)
	}
}
