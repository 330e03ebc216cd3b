package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

// MovementReportUseCase genera el PDF de un listado de movimientos (entradas, salidas o ajustes).
type MovementReportUseCase struct {
	query     *MovementQueryUseCase
	generator MovementReportGenerator
	title     string
	now       func() time.Time
}

// NewMovementReportUseCase construye el caso de uso. title encabeza cada reporte.
func NewMovementReportUseCase(query *MovementQueryUseCase, generator MovementReportGenerator, title string) *MovementReportUseCase {
	return &MovementReportUseCase{query: query, generator: generator, title: title, now: time.Now}
}

var kindTitles = map[entity.MovementKind]string{
	entity.MovementKindInput:      "Entradas",
	entity.MovementKindOutput:     "Salidas",
	entity.MovementKindAdjustment: "Ajustes",
}

// DownloadMovementReport devuelve (pdfBytes, filename, nil). Los errores de consulta se propagan tal cual.
func (uc *MovementReportUseCase) DownloadMovementReport(ctx context.Context, kind entity.MovementKind) ([]byte, string, error) {
	rows, err := uc.query.ListMovements(ctx, kind, dto.PageRequest{})
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	title := fmt.Sprintf("%s - %s", uc.title, kindTitles[kind])
	pdf, err := uc.generator.GenerateMovementReport(ctx, title, kind, rows, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("movimientos_%s_%s.pdf", strings.ToLower(string(kind)), now.Format("20060102_1504"))
	return pdf, filename, nil
}
