package usecase

import (
	"context"
	"fmt"

	"hustlehub/internal/data/repository"
	"hustlehub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*response.ServiceResponse, error)
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*response.CategoryResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	result := make([]response.ServiceResponse, 0, len(services))
	for _, service := range services {
		result = append(result, response.ServiceToResponse(service))
	}

	return result, nil
}

func (s *catalogService) GetService(ctx context.Context, id uuid.UUID) (*response.ServiceResponse, error) {
	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get service", zap.Error(err), zap.String("service_id", id.String()))
		return nil, fmt.Errorf("get service: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, response.CategoryToResponse(category))
	}

	return result, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*response.CategoryResponse, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", id.String()))
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}
