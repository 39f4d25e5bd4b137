package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"budgetflow/internal/cache"
	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/logger"
	"budgetflow/internal/models"
	"budgetflow/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db           *gorm.DB
	groupService GroupServicer
	cache        *cache.Cache
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, groupService GroupServicer, c *cache.Cache) TransactionServicer {
	return &transactionService{
		db:           db,
		groupService: groupService,
		cache:        c,
	}
}

// CreateTransaction records a transaction for a user. A non-nil groupID
// attributes it to a group the user must be an active member of.
// Categories are normalized to lower case on write.
func (s *transactionService) CreateTransaction(
	userID uint,
	groupID *uint,
	transactionType models.TransactionType,
	amount int64,
	category, description string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	if groupID != nil {
		role, err := s.groupService.GetRole(userID, *groupID)
		if err != nil {
			return nil, err
		}
		if !role.IsMember {
			return nil, apperrors.ErrNotGroupMember
		}
	}

	transaction := &models.Transaction{
		UserID:      userID,
		GroupID:     groupID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.invalidateUsage(userID, groupID)
	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// own transactions, newest first.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page), pagination.NewestFirst).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGroupTransactions retrieves a paginated, filtered list of a group's
// transactions. The caller must be an active member.
func (s *transactionService) GetGroupTransactions(userID, groupID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	role, err := s.groupService.GetRole(userID, groupID)
	if err != nil {
		return nil, err
	}
	if !role.IsMember {
		return nil, apperrors.ErrNotGroupMember
	}

	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("group_id = ?", groupID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page), pagination.NewestFirst).
		Preload("User").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", strings.ToLower(*f.Category))
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update. The owner can always
// update their own; a group admin can also update another member's
// group transaction. Group attribution cannot be changed after the
// fact.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if transaction.UserID != userID {
		if transaction.GroupID == nil {
			// Hide other users' personal transactions entirely.
			return nil, apperrors.ErrTransactionNotFound
		}
		role, err := s.groupService.GetRole(userID, *transaction.GroupID)
		if err != nil {
			return nil, err
		}
		if !role.IsAdmin {
			return nil, apperrors.ErrAdminRequired
		}
	}

	if fields.Type != nil {
		if *fields.Type != models.TransactionTypeIncome && *fields.Type != models.TransactionTypeExpense {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
		}
		transaction.Type = *fields.Type
	}
	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		transaction.Amount = *fields.Amount
	}
	if fields.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*fields.Category))
		if category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category cannot be empty")
		}
		transaction.Category = category
	}
	if fields.Description != nil {
		transaction.Description = *fields.Description
	}
	if fields.Date != nil {
		transaction.Date = *fields.Date
	}

	if err := s.db.Save(&transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.invalidateUsage(transaction.UserID, transaction.GroupID)
	return &transaction, nil
}

// DeleteTransaction deletes a transaction. The owner can always delete
// their own; a group admin can also delete another member's group
// transaction.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if transaction.UserID != userID {
		if transaction.GroupID == nil {
			// Hide other users' personal transactions entirely.
			return apperrors.ErrTransactionNotFound
		}
		role, err := s.groupService.GetRole(userID, *transaction.GroupID)
		if err != nil {
			return err
		}
		if !role.IsAdmin {
			return apperrors.ErrAdminRequired
		}
	}

	if err := s.db.Delete(&transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.invalidateUsage(transaction.UserID, transaction.GroupID)
	return nil
}

// GetGroupSummary aggregates a group's transactions into income/expense
// totals plus per-category and per-member expense breakdowns. The caller
// must be an active member.
func (s *transactionService) GetGroupSummary(userID, groupID uint) (*GroupSummary, error) {
	role, err := s.groupService.GetRole(userID, groupID)
	if err != nil {
		return nil, err
	}
	if !role.IsMember {
		return nil, apperrors.ErrNotGroupMember
	}

	summary := &GroupSummary{
		ByCategory: []CategorySpend{},
		ByMember:   []MemberSpend{},
	}

	type typeTotal struct {
		Type  models.TransactionType
		Total int64
	}
	var totals []typeTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("group_id = ?", groupID).
		Group("type").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome = t.Total
		case models.TransactionTypeExpense:
			summary.TotalExpense = t.Total
		}
	}

	if err := s.db.Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("group_id = ? AND type = ?", groupID, models.TransactionTypeExpense).
		Group("category").
		Order("total DESC").
		Scan(&summary.ByCategory).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&models.Transaction{}).
		Select("transactions.user_id, users.name, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("JOIN users ON users.id = transactions.user_id").
		Where("transactions.group_id = ? AND transactions.type = ?", groupID, models.TransactionTypeExpense).
		Group("transactions.user_id, users.name").
		Order("total DESC").
		Scan(&summary.ByMember).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return summary, nil
}

// invalidateUsage drops cached budget usage for the user and, when set,
// the group. Cache trouble is logged and ignored.
func (s *transactionService) invalidateUsage(userID uint, groupID *uint) {
	keys := []string{userBudgetUsageKey(userID)}
	if groupID != nil {
		keys = append(keys, groupBudgetUsageKey(*groupID))
	}
	if err := s.cache.Delete(context.Background(), keys...); err != nil {
		logger.Get().Warnw("failed to invalidate budget usage cache", "error", err, "user_id", userID)
	}
}
