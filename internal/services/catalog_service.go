package services

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/claretax/apartmart/internal/domain"
	"github.com/claretax/apartmart/internal/repos"

	"github.com/google/uuid"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// List applies the caller's visibility: unauthenticated and resident callers
// see active products only.
func (s *CatalogService) List(viewer *domain.User, category, search string, limit, skip int) ([]domain.Product, error) {
	activeOnly := viewer == nil || !viewer.Role.Can(domain.OpCatalogAll)
	return s.Prods.List(repos.ProductFilter{
		Category:   category,
		Search:     search,
		ActiveOnly: activeOnly,
		Limit:      limit,
		Skip:       skip,
	})
}

func (s *CatalogService) Get(viewer *domain.User, id string) (*domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Status != string(domain.ProductActive) {
		if viewer == nil || !viewer.Role.Can(domain.OpCatalogAll) {
			return nil, ErrNotFound
		}
	}
	return p, nil
}

type CreateProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
}

func (s *CatalogService) Create(caller *domain.User, in CreateProductInput) (*domain.Product, error) {
	switch {
	case in.Name == "":
		return nil, invalid("Missing required field: name")
	case in.Description == "":
		return nil, invalid("Missing required field: description")
	case in.Price <= 0:
		return nil, invalid("Missing required field: price")
	case in.Category == "":
		return nil, invalid("Missing required field: category")
	case in.Stock < 0:
		return nil, invalid("Missing required field: stock")
	}

	images := in.Images
	if len(images) == 0 {
		images = []string{domain.PlaceholderImage}
	}
	ij, _ := json.Marshal(images)

	now := repos.Now()
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImagesJSON:  string(ij),
		Category:    in.Category,
		Stock:       in.Stock,
		Status:      string(domain.ProductActive),
		CreatedBy:   caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Prods.Insert(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProductInput is the whitelist of mutable fields; anything else in the
// request body is dropped by decoding, not rejected.
type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int      `json:"price"`
	Images      *[]string `json:"images"`
	Category    *string   `json:"category"`
	Stock       *int      `json:"stock"`
	Status      *string   `json:"status"`
}

func (s *CatalogService) Update(id string, in UpdateProductInput) (*domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, invalid("Name cannot be empty")
		}
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, invalid("Price must be positive")
		}
		p.Price = *in.Price
	}
	if in.Images != nil && len(*in.Images) > 0 {
		ij, _ := json.Marshal(*in.Images)
		p.ImagesJSON = string(ij)
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, invalid("Stock cannot be negative")
		}
		p.Stock = *in.Stock
	}
	if in.Status != nil {
		st, ok := domain.ParseProductStatus(*in.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		p.Status = string(st)
	}

	p.UpdatedAt = repos.Now()
	if err := s.Prods.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete is a hard delete. Orders keep their own line-item snapshots, so no
// cascade check is needed.
func (s *CatalogService) Delete(id string) (*domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.Prods.Delete(id); err != nil {
		return nil, err
	}
	return p, nil
}
