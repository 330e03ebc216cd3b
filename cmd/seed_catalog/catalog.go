package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
)

// Columnas esperadas en el encabezado (sin importar mayúsculas ni orden).
var catalogColumns = []string{"nombre", "unidad", "grupo", "subgrupo", "categoria"}

// readCatalog lee el CSV del catálogo (separador ';' como exporta Excel en es-CO).
// Si latin1 es true el archivo se decodifica desde ISO-8859-1.
func readCatalog(r io.Reader, latin1 bool) ([]dto.CreateMasterProductRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catálogo vacío")
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range catalogColumns[:2] {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	field := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []dto.CreateMasterProductRequest
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		name := field(rec, "nombre")
		if name == "" {
			continue
		}
		out = append(out, dto.CreateMasterProductRequest{
			Name:     name,
			BaseUnit: strings.ToUpper(field(rec, "unidad")),
			Group:    field(rec, "grupo"),
			Subgroup: field(rec, "subgrupo"),
			Category: field(rec, "categoria"),
		})
	}
	return out, nil
}
