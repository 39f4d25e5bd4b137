package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/models"
	"budgetflow/internal/services"
)

// UserHandler handles profile and onboarding budget requests.
type UserHandler struct {
	userService   services.UserServicer
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer, budgetService services.BudgetServicer, auditService services.AuditServicer) *UserHandler {
	return &UserHandler{userService: userService, budgetService: budgetService, auditService: auditService}
}

// UpdateProfileRequest represents the profile update payload. All fields
// are optional; omitted fields keep their current values.
type UpdateProfileRequest struct {
	Name           *string     `json:"name" binding:"omitempty,max=100"`
	Age            *int        `json:"age" binding:"omitempty,min=13,max=120"`
	Sex            *models.Sex `json:"sex" binding:"omitempty,sex_code"`
	Salary         *int64      `json:"salary" binding:"omitempty,gte=0"`
	BusinessIncome *int64      `json:"business_income" binding:"omitempty,gte=0"`
}

// BudgetItemRequest is one category limit in the onboarding budget list.
type BudgetItemRequest struct {
	Category string   `json:"category" binding:"required,max=100"`
	Amount   int64    `json:"amount" binding:"required,gt=0"`
	Percent  *float64 `json:"percent" binding:"omitempty,gte=0,lte=100"`
}

// ReplaceBudgetsRequest represents the bulk budget replacement payload.
type ReplaceBudgetsRequest struct {
	Budgets []BudgetItemRequest `json:"budgets" binding:"required,dive"`
}

// GetProfile returns the authenticated user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile and income information
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile updates the authenticated user's profile
// @Summary     Update user profile
// @Description Partially update profile and income fields. Total income is recomputed and the profile is marked complete once age, sex, and salary are set.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields to update"
// @Success     200 {object} models.User "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.ProfileUpdateFields{
		Name:           req.Name,
		Age:            req.Age,
		Sex:            req.Sex,
		Salary:         req.Salary,
		BusinessIncome: req.BusinessIncome,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROFILE", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetBudgets returns the user's personal budgets with usage
// @Summary     Get onboarding budgets
// @Description Get the authenticated user's personal budget list with derived usage
// @Tags        users,budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.BudgetUsage "Personal budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/budgets [get]
func (h *UserHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// ReplaceBudgets replaces the user's personal budget list
// @Summary     Replace onboarding budgets
// @Description Replace the authenticated user's entire personal budget list in one call. Group budgets are not affected.
// @Tags        users,budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReplaceBudgetsRequest true "New budget list"
// @Success     200 {array} models.Budget "Replaced budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/budgets [put]
func (h *UserHandler) ReplaceBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReplaceBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items := make([]services.BudgetItem, 0, len(req.Budgets))
	for _, b := range req.Budgets {
		items = append(items, services.BudgetItem{
			Category: b.Category,
			Amount:   b.Amount,
			Percent:  b.Percent,
		})
	}

	budgets, err := h.budgetService.ReplaceUserBudgets(userID, items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REPLACE_BUDGETS", "budget", userID, c.ClientIP(),
		map[string]interface{}{"count": len(budgets)})

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}
