package dto

import (
	"time"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RegisterInputRequest body para POST /api/inventory/inputs (ingreso de un lote nuevo).
type RegisterInputRequest struct {
	MasterProductID  int64           `json:"master_product_id"`
	Name             string          `json:"name,omitempty"` // opcional; por defecto el nombre del producto maestro
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             entity.Unit     `json:"unit"`
	MovementCategory string          `json:"movement_category"` // donation, purchase, return, transfer
	Lot              string          `json:"lot,omitempty"`
	ExpiryDate       *time.Time      `json:"expiry_date,omitempty"`
	ReceiptDate      *time.Time      `json:"receipt_date,omitempty"`
	Receiver         string          `json:"receiver"`
	Supplier         string          `json:"supplier,omitempty"`
	Type             string          `json:"type"` // DONATED, PURCHASED
}

// RegisterOutputRequest body para POST /api/inventory/outputs.
type RegisterOutputRequest struct {
	ProductID        int64           `json:"product_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             entity.Unit     `json:"unit"`
	MovementCategory string          `json:"movement_category"` // consumption, sale, donation, return, transfer
}

// RegisterAdjustmentRequest body para POST /api/inventory/adjustments.
type RegisterAdjustmentRequest struct {
	ProductID        int64           `json:"product_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             entity.Unit     `json:"unit"`
	MovementCategory string          `json:"movement_category"` // correction, loss_damage, theft, due_date, general
	AdjustmentType   string          `json:"adjustment_type"`   // POSITIVE, NEGATIVE
}

// ResultReason motivo interno del resultado; no se serializa (la API no expone códigos de máquina).
type ResultReason string

const (
	ReasonNone              ResultReason = ""
	ReasonInvalidFields     ResultReason = "invalid_fields"
	ReasonIncompatibleUnits ResultReason = "incompatible_units"
	ReasonInsufficientStock ResultReason = "insufficient_stock"
	ReasonFailure           ResultReason = "failure"
)

// OperationResult respuesta de toda operación de escritura de stock: {success, title, description}.
type OperationResult struct {
	Success     bool         `json:"success"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Reason      ResultReason `json:"-"`
}

// MovementResponse movimiento del libro unido con su producto.
type MovementResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductUnit string          `json:"product_unit"`
	Lot         string          `json:"lot,omitempty"`
	Type        string          `json:"movement_type"`
	Category    string          `json:"movement_category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Details     string          `json:"details"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MovementListResponse listado de movimientos de una familia.
type MovementListResponse struct {
	Kind  string             `json:"kind"`
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
