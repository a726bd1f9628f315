package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hustlehub/internal/data/entity"
	"hustlehub/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	var all []*entity.Category
	for _, c := range r.categories {
		clone := *c
		all = append(all, &clone)
	}
	return all, nil
}

func newCatalogFixture() (CatalogService, *stubServiceRepo, *stubCategoryRepo) {
	serviceRepo := &stubServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
	categoryRepo := &stubCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	repo := &repository.Repository{
		Service:  serviceRepo,
		Category: categoryRepo,
	}
	return NewCatalogService(repo, zap.NewNop()), serviceRepo, categoryRepo
}

func TestCatalogService_ListServices(t *testing.T) {
	svc, serviceRepo, _ := newCatalogFixture()

	for _, name := range []string{"Men's Haircut", "Laptop Repair"} {
		id := uuid.New()
		serviceRepo.services[id] = &entity.Service{
			BaseSimple: entity.BaseSimple{ID: id, CreatedAt: time.Now()},
			Name:       name,
			Price:      15.0,
		}
	}

	result, err := svc.ListServices(context.Background())
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("services = %d, want 2", len(result))
	}
}

func TestCatalogService_ListServices_Empty(t *testing.T) {
	svc, _, _ := newCatalogFixture()

	result, err := svc.ListServices(context.Background())
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", result)
	}
}

func TestCatalogService_GetService(t *testing.T) {
	svc, serviceRepo, _ := newCatalogFixture()

	serviceID := uuid.New()
	serviceRepo.services[serviceID] = &entity.Service{
		BaseSimple:  entity.BaseSimple{ID: serviceID, CreatedAt: time.Now()},
		Name:        "Tutoring",
		Description: "Math tutoring",
		Price:       25.0,
	}

	result, err := svc.GetService(context.Background(), serviceID)
	if err != nil {
		t.Fatalf("GetService returned error: %v", err)
	}
	if result.ID != serviceID.String() {
		t.Errorf("service id = %s, want %s", result.ID, serviceID)
	}
	if result.Name != "Tutoring" {
		t.Errorf("service name = %s, want Tutoring", result.Name)
	}
}

func TestCatalogService_GetService_NotFound(t *testing.T) {
	svc, _, _ := newCatalogFixture()

	_, err := svc.GetService(context.Background(), uuid.New())
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestCatalogService_ListCategories(t *testing.T) {
	svc, _, categoryRepo := newCatalogFixture()

	for _, name := range []string{"Fashion", "Electronics", "Education"} {
		id := uuid.New()
		categoryRepo.categories[id] = &entity.Category{ID: id, Name: name}
	}

	result, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories returned error: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("categories = %d, want 3", len(result))
	}
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	svc, _, _ := newCatalogFixture()

	_, err := svc.GetCategory(context.Background(), uuid.New())
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
