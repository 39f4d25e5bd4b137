package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/models"
	"budgetflow/internal/services"
)

func setupUserRouter(handler *UserHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/users/profile", handler.GetProfile)
	auth.PUT("/users/profile", handler.UpdateProfile)
	auth.GET("/users/budgets", handler.GetBudgets)
	auth.PUT("/users/budgets", handler.ReplaceBudgets)
	return r
}

func TestUserHandler_GetProfile(t *testing.T) {
	t.Run("returns 200 with user profile", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id uint) (*models.User, error) {
				return &models.User{
					Base:        models.Base{ID: id},
					Name:        "John Doe",
					Email:       "test@example.com",
					Salary:      500000,
					TotalIncome: 500000,
				}, nil
			},
		}
		handler := NewUserHandler(userSvc, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "GET", "/users/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		user := result["user"].(map[string]interface{})
		if user["email"] != "test@example.com" {
			t.Errorf("expected test@example.com, got %v", user["email"])
		}
		if user["total_income"].(float64) != 500000 {
			t.Errorf("expected total_income 500000, got %v", user["total_income"])
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{}, &mockBudgetService{}, &mockAuditService{})
		r := gin.New()
		r.GET("/users/profile", handler.GetProfile)

		rec := doRequest(r, "GET", "/users/profile", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when user not found", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(_ uint) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		handler := NewUserHandler(userSvc, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "GET", "/users/profile", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	t.Run("returns 200 and passes fields to service", func(t *testing.T) {
		var captured services.ProfileUpdateFields
		userSvc := &mockUserService{
			updateProfileFn: func(_ uint, fields services.ProfileUpdateFields) (*models.User, error) {
				captured = fields
				return &models.User{Base: models.Base{ID: 1}, ProfileComplete: true}, nil
			},
		}
		handler := NewUserHandler(userSvc, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/profile",
			`{"age":30,"sex":"F","salary":500000,"business_income":100000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Age == nil || *captured.Age != 30 {
			t.Errorf("expected age 30, got %v", captured.Age)
		}
		if captured.Sex == nil || *captured.Sex != models.SexFemale {
			t.Errorf("expected sex F, got %v", captured.Sex)
		}
		if captured.Salary == nil || *captured.Salary != 500000 {
			t.Errorf("expected salary 500000, got %v", captured.Salary)
		}
		if captured.Name != nil {
			t.Errorf("expected name untouched, got %v", *captured.Name)
		}
	})

	t.Run("returns 400 on invalid sex code", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{}, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/profile", `{"sex":"X"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on underage", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{}, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/profile", `{"age":7}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative salary", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{}, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/profile", `{"salary":-100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestUserHandler_ReplaceBudgets(t *testing.T) {
	t.Run("returns 200 and passes items to service", func(t *testing.T) {
		var captured []services.BudgetItem
		budgetSvc := &mockBudgetService{
			replaceUserBudgetsFn: func(_ uint, items []services.BudgetItem) ([]models.Budget, error) {
				captured = items
				return []models.Budget{
					{Category: "groceries", Amount: 50000},
					{Category: "rent", Amount: 120000},
				}, nil
			},
		}
		handler := NewUserHandler(&mockUserService{}, budgetSvc, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/budgets",
			`{"budgets":[{"category":"Groceries","amount":50000},{"category":"Rent","amount":120000,"percent":40}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(captured) != 2 {
			t.Fatalf("expected 2 items passed to service, got %d", len(captured))
		}
		if captured[1].Percent == nil || *captured[1].Percent != 40 {
			t.Errorf("expected percent 40 on second item, got %v", captured[1].Percent)
		}
	})

	t.Run("returns 400 on missing budgets field", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{}, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/budgets", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero amount item", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{}, &mockBudgetService{}, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/budgets",
			`{"budgets":[{"category":"food","amount":0}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on duplicate category", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			replaceUserBudgetsFn: func(_ uint, _ []services.BudgetItem) ([]models.Budget, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Duplicate category: food")
			},
		}
		handler := NewUserHandler(&mockUserService{}, budgetSvc, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "PUT", "/users/budgets",
			`{"budgets":[{"category":"food","amount":100},{"category":"Food","amount":200}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestUserHandler_GetBudgets(t *testing.T) {
	t.Run("returns 200 with budget usage", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			getUserBudgetsFn: func(_ uint) ([]services.BudgetUsage, error) {
				return []services.BudgetUsage{
					{Budget: models.Budget{Category: "food", Amount: 50000}, Used: 12000, Remaining: 38000},
				}, nil
			},
		}
		handler := NewUserHandler(&mockUserService{}, budgetSvc, &mockAuditService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, "GET", "/users/budgets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		budgets := result["budgets"].([]interface{})
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}
		first := budgets[0].(map[string]interface{})
		if first["used"].(float64) != 12000 {
			t.Errorf("expected used 12000, got %v", first["used"])
		}
	})
}
