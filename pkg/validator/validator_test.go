package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/pkg/validator"
)

type sample struct {
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0"`
	Unit     string          `json:"unit" validate:"required,unit"`
	Category string          `json:"category" validate:"required,oneof=sale consumption"`
}

func TestValidateStruct_Valido(t *testing.T) {
	err := validator.ValidateStruct(sample{Quantity: decimal.RequireFromString("0.5"), Unit: "KG", Category: "sale"})
	assert.NoError(t, err)
}

func TestValidateStruct_CamposInvalidos(t *testing.T) {
	err := validator.ValidateStruct(sample{Quantity: decimal.Zero, Unit: "TON", Category: "robo"})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Tag
	}
	assert.Equal(t, "gt", fields["quantity"])
	assert.Equal(t, "unit", fields["unit"])
	assert.Equal(t, "oneof", fields["category"])
	assert.Contains(t, err.Error(), "campos inválidos")
}

func TestValidateStruct_CantidadNegativa(t *testing.T) {
	err := validator.ValidateStruct(sample{Quantity: decimal.NewFromInt(-3), Unit: "UN", Category: "consumption"})
	assert.Error(t, err)
}
