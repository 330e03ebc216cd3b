package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMasterProductRequest entrada para crear un producto maestro (plantilla de catálogo).
type CreateMasterProductRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	BaseUnit string `json:"base_unit" validate:"required,unit"`
	Group    string `json:"group" validate:"max=100"`
	Subgroup string `json:"subgroup" validate:"max=100"`
	Category string `json:"category" validate:"max=100"`
}

// MasterProductResponse salida de un producto maestro.
type MasterProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BaseUnit  string    `json:"base_unit"`
	Group     string    `json:"group,omitempty"`
	Subgroup  string    `json:"subgroup,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductResponse salida de un producto (lote en bodega).
type ProductResponse struct {
	ID              int64           `json:"id"`
	MasterProductID int64           `json:"master_product_id"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Lot             string          `json:"lot,omitempty"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	ReceiptDate     time.Time       `json:"receipt_date"`
	Receiver        string          `json:"receiver"`
	Supplier        string          `json:"supplier,omitempty"`
	Type            string          `json:"type"`
	Group           string          `json:"group,omitempty"`
	Subgroup        string          `json:"subgroup,omitempty"`
	Category        string          `json:"category,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// MasterProductListResponse lista paginada del catálogo.
type MasterProductListResponse struct {
	Items []MasterProductResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
