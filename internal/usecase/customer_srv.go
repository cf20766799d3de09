package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	GetCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error)
	GetCustomerByID(ctx context.Context, customerID int64) (*response.CustomerResponse, error)
	LookupByPhone(ctx context.Context, phone string) (*response.CustomerResponse, error)
	FindOrCreate(ctx context.Context, req *request.FindOrCreateCustomerRequest) (*response.CustomerLookupResponse, error)
	CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID int64, req *request.CustomerRequest) (*response.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

type customerService struct {
	repo repository.CustomerRepository
	log  *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error) {
	customers, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get customers",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get customers: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	result := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		result[i] = response.CustomerToResponse(customer)
	}

	return response.NewPaginatedResponse(result, req.Page, req.Limit(), total), nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*response.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", customerID, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, repository.ErrCustomerNotFound)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) LookupByPhone(ctx context.Context, phone string) (*response.CustomerResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperror.Validation("customer.lookup", map[string]string{"phone": "This field is required"})
	}

	customer, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("lookup customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("phone %s: %w", phone, repository.ErrCustomerNotFound)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

// FindOrCreate returns the earliest customer with the phone number, or
// registers a new one under the given name.
func (s *customerService) FindOrCreate(ctx context.Context, req *request.FindOrCreateCustomerRequest) (*response.CustomerLookupResponse, error) {
	if err := utils.ValidationError("customer.find_or_create", req); err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)
	customer, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("lookup customer: %w", err)
	}
	if customer != nil {
		return &response.CustomerLookupResponse{CustomerResponse: response.CustomerToResponse(customer)}, nil
	}

	customer, err = s.create(ctx, strings.TrimSpace(req.Name), phone)
	if err != nil {
		return nil, err
	}

	return &response.CustomerLookupResponse{
		CustomerResponse: response.CustomerToResponse(customer),
		Created:          true,
	}, nil
}

func (s *customerService) create(ctx context.Context, name, phone string) (*entity.Customer, error) {
	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  name,
		Phone: phone,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created",
		zap.Int64("customer_id", customer.ID),
		zap.String("name", customer.Name),
	)
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if err := utils.ValidationError("customer.create", req); err != nil {
		s.log.Warn("Create customer validation failed", zap.Error(err))
		return nil, err
	}

	customer, err := s.create(ctx, strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone))
	if err != nil {
		return nil, err
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if err := utils.ValidationError("customer.update", req); err != nil {
		return nil, err
	}

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", customerID, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, repository.ErrCustomerNotFound)
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Phone = strings.TrimSpace(req.Phone)
	customer.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer %d: %w", customerID, err)
	}

	s.log.Info("Customer updated", zap.Int64("customer_id", customerID))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	if err := s.repo.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("delete customer %d: %w", customerID, err)
	}

	s.log.Info("Customer deleted", zap.Int64("customer_id", customerID))
	return nil
}
