package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/inventory"
)

var coreUnits = []entity.Unit{entity.UnitKG, entity.UnitG, entity.UnitL, entity.UnitUN}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestConvertUnit_Masa(t *testing.T) {
	cases := []struct {
		name     string
		qty      string
		from, to entity.Unit
		want     string
	}{
		{"kg a g", "0.5", entity.UnitKG, entity.UnitG, "500"},
		{"g a kg", "1500", entity.UnitG, entity.UnitKG, "1.5"},
		{"g a kg fracción", "1", entity.UnitG, entity.UnitKG, "0.001"},
		{"kg a kg", "7.25", entity.UnitKG, entity.UnitKG, "7.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.ConvertUnit(dec(tc.qty), tc.from, tc.to)
			require.NoError(t, err)
			assert.True(t, dec(tc.want).Equal(got), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

// Convertir una unidad a sí misma devuelve la cantidad sin cambios, sea cual sea la clase.
func TestConvertUnit_Identidad(t *testing.T) {
	for _, u := range entity.Units() {
		got, err := inventory.ConvertUnit(dec("3.333"), u, u)
		require.NoError(t, err, u)
		assert.True(t, dec("3.333").Equal(got), u)
	}
}

func TestConvertUnit_IdaYVuelta(t *testing.T) {
	for _, q := range []string{"1", "0.5", "12.345", "1000"} {
		g, err := inventory.ConvertUnit(dec(q), entity.UnitKG, entity.UnitG)
		require.NoError(t, err)
		back, err := inventory.ConvertUnit(g, entity.UnitG, entity.UnitKG)
		require.NoError(t, err)
		assert.True(t, dec(q).Equal(back), "kg->g->kg con %s", q)

		kg, err := inventory.ConvertUnit(dec(q), entity.UnitG, entity.UnitKG)
		require.NoError(t, err)
		back, err = inventory.ConvertUnit(kg, entity.UnitKG, entity.UnitG)
		require.NoError(t, err)
		assert.True(t, dec(q).Equal(back), "g->kg->g con %s", q)
	}
}

func TestConvertUnit_ClasesDistintas(t *testing.T) {
	pairs := [][2]entity.Unit{
		{entity.UnitUN, entity.UnitL},
		{entity.UnitL, entity.UnitKG},
		{entity.UnitUN, entity.UnitKG},
		{entity.UnitCX, entity.UnitUN},
		{entity.UnitG, entity.UnitCX},
	}
	for _, p := range pairs {
		_, err := inventory.ConvertUnit(dec("1"), p[0], p[1])
		assert.ErrorIs(t, err, domain.ErrIncompatibleUnits, "%s -> %s", p[0], p[1])
	}
}

// La compuerta de unidades rechaza exactamente cuando a != b y alguna es especial (UN o L).
func TestCompatible_SimetriaConUnidadesEspeciales(t *testing.T) {
	isSpecial := func(u entity.Unit) bool { return u == entity.UnitUN || u == entity.UnitL }
	for _, a := range coreUnits {
		for _, b := range coreUnits {
			rejects := a != b && (isSpecial(a) || isSpecial(b))
			assert.Equal(t, !rejects, inventory.Compatible(a, b), "%s vs %s", a, b)
			assert.Equal(t, inventory.Compatible(a, b), inventory.Compatible(b, a), "simetría %s/%s", a, b)
		}
	}
}

func TestWithinScale(t *testing.T) {
	assert.True(t, inventory.WithinScale(dec("0.04")))
	assert.True(t, inventory.WithinScale(dec("12.3456")))
	assert.True(t, inventory.WithinScale(dec("0.10000")), "ceros a la derecha no cuentan")
	assert.False(t, inventory.WithinScale(dec("0.00001")))
	assert.False(t, inventory.WithinScale(dec("1.23456")))
}

// Con cantidades de QuantityScale decimales, G -> KG nunca excede StockScale.
func TestConvertUnit_GramosCabenEnEscalaDeStock(t *testing.T) {
	for _, q := range []string{"0.0001", "0.04", "999.9999"} {
		kg, err := inventory.ConvertUnit(dec(q), entity.UnitG, entity.UnitKG)
		require.NoError(t, err)
		assert.True(t, kg.Equal(kg.Round(inventory.StockScale)), "%s G -> %s KG", q, kg)
		assert.True(t, kg.IsPositive(), q)
	}
}

func TestCompatible_UnidadDesconocida(t *testing.T) {
	assert.False(t, inventory.Compatible(entity.Unit("TON"), entity.Unit("TON")))
	assert.False(t, inventory.Compatible(entity.Unit("TON"), entity.UnitKG))
}
