package dto

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
)

// CreateCompanyRequest registers a company; the creator becomes its admin.
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	TaxID       string `json:"taxID,omitempty"`
	Description string `json:"description,omitempty"`
}

// CompanyResponse is the wire shape of a company.
type CompanyResponse struct {
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	TaxID       string `json:"taxID,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToCompanyResponse converts a domain company to its wire shape.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		TaxID:       c.TaxID,
		Description: c.Description,
	}
}
