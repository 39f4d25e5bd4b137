// Package errors provides custom error types for the BudgetFlow API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Group & membership errors.
var (
	ErrGroupNotFound       = &AppError{Code: "GROUP_NOT_FOUND", Message: "Group not found", StatusCode: http.StatusNotFound}
	ErrNotGroupMember      = &AppError{Code: "NOT_GROUP_MEMBER", Message: "Not a group member", StatusCode: http.StatusForbidden}
	ErrAdminRequired       = &AppError{Code: "ADMIN_REQUIRED", Message: "Admin role required for this action", StatusCode: http.StatusForbidden}
	ErrCreatorOnly         = &AppError{Code: "CREATOR_ONLY", Message: "Only the group creator can perform this action", StatusCode: http.StatusForbidden}
	ErrMemberNotFound      = &AppError{Code: "MEMBER_NOT_FOUND", Message: "Member not found in group", StatusCode: http.StatusNotFound}
	ErrAlreadyMember       = &AppError{Code: "ALREADY_MEMBER", Message: "Already a member of this group", StatusCode: http.StatusConflict}
	ErrAlreadyAdmin        = &AppError{Code: "ALREADY_ADMIN", Message: "Member is already an admin", StatusCode: http.StatusConflict}
	ErrAlreadyPlainMember  = &AppError{Code: "ALREADY_PLAIN_MEMBER", Message: "Member is already a regular member", StatusCode: http.StatusConflict}
	ErrCannotDemoteCreator = &AppError{Code: "CANNOT_DEMOTE_CREATOR", Message: "Cannot demote the group creator", StatusCode: http.StatusConflict}
	ErrCannotRemoveSelf    = &AppError{Code: "CANNOT_REMOVE_SELF", Message: "Cannot remove yourself. Leave the group instead", StatusCode: http.StatusBadRequest}
	ErrCreatorCannotLeave  = &AppError{Code: "CREATOR_CANNOT_LEAVE", Message: "Group creator cannot leave. Delete the group instead", StatusCode: http.StatusBadRequest}
)

// Invite errors.
var (
	ErrInviteNotFound = &AppError{Code: "INVITE_NOT_FOUND", Message: "Invalid invite token", StatusCode: http.StatusNotFound}
	ErrInviteExpired  = &AppError{Code: "INVITE_EXPIRED", Message: "Invite has expired", StatusCode: http.StatusConflict}
)
