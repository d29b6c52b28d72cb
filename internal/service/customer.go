package service

import (
	"context"
	"fmt"
	"strings"

	"shop-backoffice/internal/model"
	"shop-backoffice/internal/repository"
)

type CustomerService interface {
	List(ctx context.Context) ([]*model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	FindOrCreate(ctx context.Context, email, fullName, phone string) (*model.Customer, error)
}

type customerServiceImpl struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerServiceImpl{
		customerRepo: customerRepo,
	}
}

func (s *customerServiceImpl) List(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerServiceImpl) Get(ctx context.Context, id string) (*model.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

func (s *customerServiceImpl) FindOrCreate(ctx context.Context, email, fullName, phone string) (*model.Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	return s.customerRepo.FindOrCreate(ctx, email, fullName, phone)
}
