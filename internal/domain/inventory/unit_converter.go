package inventory

import (
	"fmt"

	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// unitClass clase de equivalencia de unidades. Solo se convierte dentro de una misma clase.
type unitClass string

const (
	classMass   unitClass = "mass"
	classVolume unitClass = "volume"
	classCount  unitClass = "count"
	classBox    unitClass = "box"
)

// Escalas de cantidad. Las declaradas admiten QuantityScale decimales; la existencia del producto
// guarda StockScale para que una cantidad en G se exprese exacta en KG (factor 1000).
const (
	QuantityScale = 4
	StockScale    = QuantityScale + 3
)

// WithinScale indica si la cantidad declarada no tiene más de QuantityScale decimales.
func WithinScale(q decimal.Decimal) bool {
	return q.Equal(q.Truncate(QuantityScale))
}

type unitDef struct {
	class  unitClass
	factor decimal.Decimal // cantidad de la unidad mínima de la clase que contiene 1 unidad
}

// unitTable tabla explícita de compatibilidad: 1 KG = 1000 G; L, UN y CX son clases de un solo miembro.
var unitTable = map[entity.Unit]unitDef{
	entity.UnitKG: {class: classMass, factor: decimal.NewFromInt(1000)},
	entity.UnitG:  {class: classMass, factor: decimal.NewFromInt(1)},
	entity.UnitL:  {class: classVolume, factor: decimal.NewFromInt(1)},
	entity.UnitUN: {class: classCount, factor: decimal.NewFromInt(1)},
	entity.UnitCX: {class: classBox, factor: decimal.NewFromInt(1)},
}

// Compatible indica si una cantidad en from puede expresarse en to.
// Es simétrica: Compatible(a, b) == Compatible(b, a).
func Compatible(from, to entity.Unit) bool {
	if from == to {
		return from.Valid()
	}
	a, okA := unitTable[from]
	b, okB := unitTable[to]
	return okA && okB && a.class == b.class
}

// ConvertUnit expresa quantity (en from) en la unidad to. Función pura.
// Misma unidad: devuelve la cantidad sin cambios. Clases distintas: domain.ErrIncompatibleUnits.
func ConvertUnit(quantity decimal.Decimal, from, to entity.Unit) (decimal.Decimal, error) {
	if from == to && from.Valid() {
		return quantity, nil
	}
	if !Compatible(from, to) {
		return decimal.Zero, fmt.Errorf("%w: %s -> %s", domain.ErrIncompatibleUnits, from, to)
	}
	// cantidad * factor(origen) / factor(destino)
	return quantity.Mul(unitTable[from].factor).Div(unitTable[to].factor), nil
}
