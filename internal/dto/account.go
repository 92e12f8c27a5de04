package dto

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
)

// CreateAccountRequest creates a node in the chart of accounts.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	Type            domain.AccountType `json:"accountType" binding:"required"`
	ParentAccountID *string            `json:"parentAccountID,omitempty"`
	Description     string             `json:"description,omitempty"`
}

// AccountResponse is the wire shape of an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	Type            domain.AccountType `json:"accountType"`
	ParentAccountID *string            `json:"parentAccountID,omitempty"`
	Description     string             `json:"description,omitempty"`
	IsActive        bool               `json:"isActive"`
}

// ToAccountResponse converts a domain account to its wire shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		Type:            a.Type,
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
	}
}
