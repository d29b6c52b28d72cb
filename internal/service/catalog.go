package service

import (
	"context"
	"fmt"
	"strings"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/model"
	"shop-backoffice/internal/repository"
)

// CatalogService covers the storefront catalog: products and shipping
// options.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *dto.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SetProductInStock(ctx context.Context, id string, inStock bool) error

	ListShippingOptions(ctx context.Context, activeOnly bool) ([]*model.ShippingOption, error)
	CreateShippingOption(ctx context.Context, req *dto.ShippingOptionRequest) (*model.ShippingOption, error)
	UpdateShippingOption(ctx context.Context, id string, req *dto.ShippingOptionRequest) (*model.ShippingOption, error)
	DeleteShippingOption(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	shippingRepo repository.ShippingOptionRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	shippingRepo repository.ShippingOptionRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		shippingRepo: shippingRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Slug:         strings.TrimSpace(req.Slug),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		InStock:      req.InStock,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id string, req *dto.ProductRequest) (*model.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:           id,
		Slug:         strings.TrimSpace(req.Slug),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		InStock:      req.InStock,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *catalogServiceImpl) SetProductInStock(ctx context.Context, id string, inStock bool) error {
	return s.productRepo.SetInStock(ctx, id, inStock)
}

func (s *catalogServiceImpl) ListShippingOptions(ctx context.Context, activeOnly bool) ([]*model.ShippingOption, error) {
	return s.shippingRepo.List(ctx, activeOnly)
}

func (s *catalogServiceImpl) CreateShippingOption(ctx context.Context, req *dto.ShippingOptionRequest) (*model.ShippingOption, error) {
	if err := validateShippingOption(req); err != nil {
		return nil, err
	}

	option := &model.ShippingOption{
		Name:         strings.TrimSpace(req.Name),
		Price:        req.Price,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.shippingRepo.Create(ctx, option); err != nil {
		return nil, fmt.Errorf("create shipping option: %w", err)
	}

	return option, nil
}

func (s *catalogServiceImpl) UpdateShippingOption(ctx context.Context, id string, req *dto.ShippingOptionRequest) (*model.ShippingOption, error) {
	if err := validateShippingOption(req); err != nil {
		return nil, err
	}

	option := &model.ShippingOption{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Price:        req.Price,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.shippingRepo.Update(ctx, option); err != nil {
		return nil, err
	}

	return s.shippingRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteShippingOption(ctx context.Context, id string) error {
	return s.shippingRepo.Delete(ctx, id)
}

func validateProduct(req *dto.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Slug) == "" {
		return fmt.Errorf("%w: product slug is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	return nil
}

func validateShippingOption(req *dto.ShippingOptionRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: shipping option name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	return nil
}
