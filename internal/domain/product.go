package domain

import "encoding/json"

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

func ParseProductStatus(s string) (ProductStatus, bool) {
	switch ProductStatus(s) {
	case ProductActive, ProductInactive:
		return ProductStatus(s), true
	}
	return "", false
}

// PlaceholderImage is used when a product is created without images.
const PlaceholderImage = "/placeholder.svg?height=200&width=200"

type Product struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       int    `db:"price"` // whole rupees
	ImagesJSON  string `db:"images_json"`
	Category    string `db:"category"`
	Stock       int    `db:"stock"`
	Status      string `db:"status"`
	CreatedBy   string `db:"created_by"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func (p *Product) Images() []string {
	var out []string
	if p.ImagesJSON != "" {
		_ = json.Unmarshal([]byte(p.ImagesJSON), &out)
	}
	if len(out) == 0 {
		out = []string{PlaceholderImage}
	}
	return out
}

type PublicProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Status      string   `json:"status"`
	CreatedBy   string   `json:"createdBy,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func (p *Product) Public() PublicProduct {
	return PublicProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images(),
		Category:    p.Category,
		Stock:       p.Stock,
		Status:      p.Status,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
