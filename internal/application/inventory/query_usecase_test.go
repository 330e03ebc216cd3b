package inventory_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
)

// fakeMovementRepo registra el último filtro recibido.
type fakeMovementRepo struct {
	rows   []*entity.MovementView
	err    error
	filter repository.MovementFilter
	calls  int
}

func (r *fakeMovementRepo) Create(context.Context, *entity.StockMovement) error { return nil }

func (r *fakeMovementRepo) ListByTypes(_ context.Context, f repository.MovementFilter) ([]*entity.MovementView, error) {
	r.calls++
	r.filter = f
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func TestListMovements_FiltraPorFamilia(t *testing.T) {
	cases := []struct {
		kind  entity.MovementKind
		types []entity.MovementType
	}{
		{entity.MovementKindInput, []entity.MovementType{entity.MovementTypeInput}},
		{entity.MovementKindOutput, []entity.MovementType{entity.MovementTypeOutput}},
		{entity.MovementKindAdjustment, []entity.MovementType{
			entity.MovementTypeAdjustmentPositive, entity.MovementTypeAdjustmentNegative,
		}},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			repo := &fakeMovementRepo{}
			uc := inventory.NewMovementQueryUseCase(repo, logger.Nop())

			_, err := uc.ListMovements(context.Background(), tc.kind, dto.PageRequest{Limit: 20, Offset: 40})

			require.NoError(t, err)
			assert.ElementsMatch(t, tc.types, repo.filter.Types)
			assert.Equal(t, 20, repo.filter.Limit)
			assert.Equal(t, 40, repo.filter.Offset)
		})
	}
}

func TestListMovements_FamiliaDesconocida(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := inventory.NewMovementQueryUseCase(repo, logger.Nop())

	_, err := uc.ListMovements(context.Background(), entity.MovementKind("TRANSFER"), dto.PageRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, repo.calls)
}

func TestListMovements_PropagaErrorSinTraducir(t *testing.T) {
	dbErr := errors.New("relation stock_movements does not exist")
	uc := inventory.NewMovementQueryUseCase(&fakeMovementRepo{err: dbErr}, logger.Nop())

	_, err := uc.ListOutputs(context.Background())

	assert.Same(t, dbErr, err)
}

func TestListAdjustments_DevuelveFilas(t *testing.T) {
	now := time.Now()
	rows := []*entity.MovementView{
		{ID: 2, ProductID: 9, ProductName: "Arroz", Type: entity.MovementTypeAdjustmentNegative, Quantity: dec("1"), Unit: entity.UnitKG, CreatedAt: now},
		{ID: 1, ProductID: 9, ProductName: "Arroz", Type: entity.MovementTypeAdjustmentPositive, Quantity: dec("2"), Unit: entity.UnitKG, CreatedAt: now.Add(-time.Hour)},
	}
	repo := &fakeMovementRepo{rows: rows}
	uc := inventory.NewMovementQueryUseCase(repo, logger.Nop())

	got, err := uc.ListAdjustments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Zero(t, repo.filter.Limit, "sin paginación devuelve todo")

	resp := inventory.ToMovementResponses(got)
	require.Len(t, resp, 2)
	assert.Equal(t, "ADJUSTMENT_NEGATIVE", resp[0].Type)
	assert.Equal(t, "KG", resp[0].Unit)
	assert.Equal(t, "Arroz", resp[1].ProductName)
}

// fakeReportGenerator devuelve bytes fijos y guarda los argumentos.
type fakeReportGenerator struct {
	title string
	kind  entity.MovementKind
	rows  int
	err   error
}

func (g *fakeReportGenerator) GenerateMovementReport(_ context.Context, title string, kind entity.MovementKind, rows []*entity.MovementView, _ time.Time) ([]byte, error) {
	g.title, g.kind, g.rows = title, kind, len(rows)
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.4"), nil
}

func TestDownloadMovementReport(t *testing.T) {
	repo := &fakeMovementRepo{rows: []*entity.MovementView{{ID: 1}, {ID: 2}, {ID: 3}}}
	gen := &fakeReportGenerator{}
	uc := inventory.NewMovementReportUseCase(inventory.NewMovementQueryUseCase(repo, logger.Nop()), gen, "Banco de Alimentos")

	pdf, filename, err := uc.DownloadMovementReport(context.Background(), entity.MovementKindOutput)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Regexp(t, regexp.MustCompile(`^movimientos_output_\d{8}_\d{4}\.pdf$`), filename)
	assert.Equal(t, "Banco de Alimentos - Salidas", gen.title)
	assert.Equal(t, entity.MovementKindOutput, gen.kind)
	assert.Equal(t, 3, gen.rows)
}

func TestDownloadMovementReport_Errores(t *testing.T) {
	t.Run("familia inválida", func(t *testing.T) {
		uc := inventory.NewMovementReportUseCase(inventory.NewMovementQueryUseCase(&fakeMovementRepo{}, logger.Nop()), &fakeReportGenerator{}, "X")
		_, _, err := uc.DownloadMovementReport(context.Background(), "OTRO")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("generador falla", func(t *testing.T) {
		genErr := errors.New("fuente no encontrada")
		uc := inventory.NewMovementReportUseCase(inventory.NewMovementQueryUseCase(&fakeMovementRepo{}, logger.Nop()), &fakeReportGenerator{err: genErr}, "X")
		_, _, err := uc.DownloadMovementReport(context.Background(), entity.MovementKindInput)
		assert.ErrorIs(t, err, genErr)
	})
}
