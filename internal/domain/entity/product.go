package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de procedencia de un producto.
const (
	ProductTypeDonated   = "DONATED"   // donado
	ProductTypePurchased = "PURCHASED" // comprado
)

// Product representa un lote físico en bodega, creado por una entrada.
// Quantity es la existencia actual y solo cambia vía movimientos (salidas y ajustes); nunca es negativa.
type Product struct {
	ID              int64
	MasterProductID int64
	Name            string
	Quantity        decimal.Decimal
	Unit            Unit
	Lot             string
	ExpiryDate      *time.Time
	ReceiptDate     time.Time
	Receiver        string // quien recibió el lote
	Supplier        string // donante o proveedor
	Type            string // DONATED, PURCHASED
	Group           string
	Subgroup        string
	Category        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MasterProduct es la plantilla canónica (nombre, unidad base y clasificación) que referencian los productos.
type MasterProduct struct {
	ID        int64
	Name      string
	BaseUnit  Unit
	Group     string
	Subgroup  string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
