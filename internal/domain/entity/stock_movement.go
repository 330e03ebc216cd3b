package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento del libro de stock.
type MovementType string

const (
	MovementTypeInput              MovementType = "INPUT"
	MovementTypeOutput             MovementType = "OUTPUT"
	MovementTypeAdjustmentPositive MovementType = "ADJUSTMENT_POSITIVE"
	MovementTypeAdjustmentNegative MovementType = "ADJUSTMENT_NEGATIVE"
)

// MovementKind familia de movimientos usada en los listados.
type MovementKind string

const (
	MovementKindInput      MovementKind = "INPUT"
	MovementKindOutput     MovementKind = "OUTPUT"
	MovementKindAdjustment MovementKind = "ADJUSTMENT"
)

// Types devuelve los tipos de movimiento que pertenecen a la familia.
// Una familia desconocida devuelve nil.
func (k MovementKind) Types() []MovementType {
	switch k {
	case MovementKindInput:
		return []MovementType{MovementTypeInput}
	case MovementKindOutput:
		return []MovementType{MovementTypeOutput}
	case MovementKindAdjustment:
		return []MovementType{MovementTypeAdjustmentPositive, MovementTypeAdjustmentNegative}
	}
	return nil
}

// Tipos de ajuste.
const (
	AdjustmentPositive = "POSITIVE"
	AdjustmentNegative = "NEGATIVE"
)

// Categorías (motivo) de movimiento.
const (
	CategoryDonation    = "donation"
	CategoryPurchase    = "purchase"
	CategoryReturn      = "return"
	CategoryTransfer    = "transfer"
	CategoryConsumption = "consumption"
	CategorySale        = "sale"
	CategoryCorrection  = "correction"
	CategoryLossDamage  = "loss_damage"
	CategoryTheft       = "theft"
	CategoryDueDate     = "due_date"
	CategoryGeneral     = "general"
)

// StockMovement entrada inmutable del libro de stock (solo se inserta).
// Quantity y Unit son los declarados en la operación, antes de cualquier conversión.
type StockMovement struct {
	ID            int64
	ProductID     int64
	TransactionID string
	Type          MovementType
	Category      string
	Quantity      decimal.Decimal
	Unit          Unit
	Details       string
	CreatedBy     string
	CreatedAt     time.Time
}

// MovementView movimiento unido con la identidad del producto, para listados y reportes.
type MovementView struct {
	ID          int64           `db:"id"`
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	ProductUnit Unit            `db:"product_unit"`
	Lot         string          `db:"lot"`
	Type        MovementType    `db:"movement_type"`
	Category    string          `db:"movement_category"`
	Quantity    decimal.Decimal `db:"quantity"`
	Unit        Unit            `db:"unit"`
	Details     string          `db:"details"`
	CreatedBy   string          `db:"created_by"`
	CreatedAt   time.Time       `db:"created_at"`
}
