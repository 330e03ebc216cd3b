package inventory

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MovementDetails genera el resumen legible (separado por " | ") que se guarda en el movimiento
// y en la auditoría. Es solo para mostrar; ninguna regla debe leerlo.
func MovementDetails(
	movType entity.MovementType,
	category string,
	quantity decimal.Decimal,
	unit entity.Unit,
	productID int64,
	at time.Time,
) string {
	return fmt.Sprintf("Tipo: %s | Categoría: %s | Cantidad: %s | Unidad: %s | Producto: %s | Fecha: %s",
		movType, category, quantity.String(), unit, strconv.FormatInt(productID, 10), at.UTC().Format(time.RFC3339))
}

// ChangedValue formatea la variación registrada en auditoría: "<cantidad> <unidad>".
func ChangedValue(quantity decimal.Decimal, unit entity.Unit) string {
	return quantity.String() + " " + string(unit)
}
