// internal/services/catalog_service.go
package services

import (
	"context"
	"strings"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/repository"
)

// CatalogRequest is the validated JSON body for one catalog entity. Create
// builds a new row from it; update writes Fields over an existing row.
type CatalogRequest[T any] interface {
	Model() *T
	Fields() map[string]interface{}
}

// CatalogService implements list/get/create/update/delete for the simple
// catalog tables (categories, subcategories, sizes, colors, brands).
type CatalogService[T any] struct {
	repo     repository.Repository[T]
	resource string
	preloads []string
}

func NewCatalogService[T any](repo repository.Repository[T], resource string, preloads ...string) *CatalogService[T] {
	return &CatalogService[T]{
		repo:     repo,
		resource: resource,
		preloads: preloads,
	}
}

// Resource is the human readable entity name used in messages.
func (s *CatalogService[T]) Resource() string {
	return s.resource
}

func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	entities, err := s.repo.FindMany(ctx, s.preloads...)
	if err != nil {
		return nil, apperr.FromDB(err, i18n.KeyCatalogNotFound, i18n.KeyCatalogFetchFailed, s.resource)
	}
	return entities, nil
}

func (s *CatalogService[T]) Get(ctx context.Context, id uint) (*T, error) {
	entity, err := s.repo.FindUnique(ctx, id, s.preloads...)
	if err != nil {
		return nil, apperr.FromDB(err, i18n.KeyCatalogNotFound, i18n.KeyCatalogFetchFailed, s.resource)
	}
	return entity, nil
}

func (s *CatalogService[T]) Create(ctx context.Context, req CatalogRequest[T]) (*T, error) {
	entity := req.Model()
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, apperr.FromDB(err, i18n.KeyCatalogNotFound, i18n.KeyCatalogCreateFailed, s.resource)
	}
	if len(s.preloads) == 0 {
		return entity, nil
	}
	return s.Get(ctx, idOf(entity))
}

func (s *CatalogService[T]) Update(ctx context.Context, id uint, req CatalogRequest[T]) (*T, error) {
	entity, err := s.repo.Update(ctx, id, req.Fields(), s.preloads...)
	if err != nil {
		return nil, apperr.FromDB(err, i18n.KeyCatalogNotFound, i18n.KeyCatalogUpdateFailed, s.resource)
	}
	return entity, nil
}

// Delete fails with a conflict while other rows still reference the entity.
func (s *CatalogService[T]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.FromDB(err, i18n.KeyCatalogNotFound, i18n.KeyCatalogDeleteFailed, s.resource)
	}
	return nil
}

func idOf[T any](entity *T) uint {
	if identified, ok := any(entity).(interface{ GetID() uint }); ok {
		return identified.GetID()
	}
	return 0
}

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Image       *string `json:"image" validate:"omitempty,max=512"`
}

func (r CategoryRequest) Model() *models.Category {
	return &models.Category{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Image:       r.Image,
	}
}

func (r CategoryRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":        strings.TrimSpace(r.Name),
		"description": r.Description,
		"image":       r.Image,
	}
}

type SubCategoryRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	CategoryID  uint   `json:"categoryID" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=2000"`
}

func (r SubCategoryRequest) Model() *models.SubCategory {
	return &models.SubCategory{
		Name:        strings.TrimSpace(r.Name),
		CategoryID:  r.CategoryID,
		Description: r.Description,
	}
}

func (r SubCategoryRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":        strings.TrimSpace(r.Name),
		"category_id": r.CategoryID,
		"description": r.Description,
	}
}

type SizeRequest struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

func (r SizeRequest) Model() *models.Size {
	return &models.Size{Name: strings.TrimSpace(r.Name)}
}

func (r SizeRequest) Fields() map[string]interface{} {
	return map[string]interface{}{"name": strings.TrimSpace(r.Name)}
}

type ColorRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=50"`
	HexCode string `json:"hexCode" validate:"omitempty,hexcolor,max=7"`
}

func (r ColorRequest) Model() *models.Color {
	return &models.Color{
		Name:    strings.TrimSpace(r.Name),
		HexCode: strings.ToUpper(r.HexCode),
	}
}

func (r ColorRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":     strings.TrimSpace(r.Name),
		"hex_code": strings.ToUpper(r.HexCode),
	}
}

type BrandRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Logo        *string `json:"logo" validate:"omitempty,max=512"`
}

func (r BrandRequest) Model() *models.Brand {
	return &models.Brand{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Logo:        r.Logo,
	}
}

func (r BrandRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":        strings.TrimSpace(r.Name),
		"description": r.Description,
		"logo":        r.Logo,
	}
}
