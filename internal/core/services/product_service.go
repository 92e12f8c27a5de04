package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
)

// productService manages variants as the ledger core sees them: unit metadata
// plus the PMP cache. Catalog concerns beyond that live elsewhere.
type productService struct {
	BaseService
	variantRepo portsrepo.VariantRepositoryFacade
}

// NewProductService creates the variant directory service.
func NewProductService(variantRepo portsrepo.VariantRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc) portssvc.ProductSvcFacade {
	return &productService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		variantRepo: variantRepo,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateVariant registers a variant. PMP starts at zero and is only ever
// moved by the cost averager.
func (s *productService) CreateVariant(ctx context.Context, companyID string, req dto.CreateVariantRequest, creatorUserID string) (*domain.ProductVariant, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	factor := req.ConversionFactor
	if factor.IsZero() {
		factor = decimal.NewFromInt(1)
	}
	if factor.IsNegative() {
		return nil, fmt.Errorf("%w: conversion factor must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	variant := domain.ProductVariant{
		VariantID:        uuid.NewString(),
		ProductID:        req.ProductID,
		CompanyID:        companyID,
		Name:             req.Name,
		SKU:              req.SKU,
		UnitSymbol:       req.UnitSymbol,
		ConversionFactor: factor,
		PMP:              decimal.Zero,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.variantRepo.SaveVariant(ctx, variant); err != nil {
		s.LogError(ctx, err, "failed to create variant",
			slog.String("company_id", companyID),
			slog.String("sku", req.SKU))
		return nil, err
	}
	return &variant, nil
}

// GetVariantByID retrieves a company's variant.
func (s *productService) GetVariantByID(ctx context.Context, companyID string, variantID string, requestingUserID string) (*domain.ProductVariant, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	variant, err := s.variantRepo.FindVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if variant.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return variant, nil
}

// ListVariants retrieves every active variant of a company.
func (s *productService) ListVariants(ctx context.Context, companyID string, requestingUserID string) ([]domain.ProductVariant, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.variantRepo.ListVariantsByCompany(ctx, companyID)
}
