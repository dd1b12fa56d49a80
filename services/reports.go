package services

import (
	"asistente_legal_go/db"
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportEstadisticas renders the current statistics snapshot as an Excel
// workbook: a summary sheet, the type breakdown and the 6-month series.
func ExportEstadisticas(s *db.Store) (*bytes.Buffer, error) {
	stats := ComputeEstadisticas(s)

	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	// --- Summary sheet ---
	const sheetResumen = "Resumen"
	f.SetSheetName("Sheet1", sheetResumen)

	f.SetCellValue(sheetResumen, "A1", "Estadísticas del despacho")
	f.SetCellStyle(sheetResumen, "A1", "A1", titleStyle)

	resumen := [][]interface{}{
		{"Total de clientes", stats.TotalClientes},
		{"Total de casos", stats.TotalCasos},
		{"Total de documentos", stats.TotalDocumentos},
		{"Casos activos", stats.CasosActivos},
		{"Casos pendientes", stats.CasosPendientes},
		{"Casos ganados", stats.CasosGanados},
		{"Casos cerrados", stats.CasosCerrados},
		{"Tasa de éxito (%)", stats.TasaExito},
	}
	for i, row := range resumen {
		f.SetCellValue(sheetResumen, fmt.Sprintf("A%d", i+3), row[0])
		f.SetCellValue(sheetResumen, fmt.Sprintf("B%d", i+3), row[1])
	}

	// --- Type breakdown sheet ---
	const sheetTipos = "Tipos de caso"
	if _, err := f.NewSheet(sheetTipos); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetCellValue(sheetTipos, "A1", "Tipo")
	f.SetCellValue(sheetTipos, "B1", "Casos")
	f.SetCellStyle(sheetTipos, "A1", "B1", titleStyle)
	for i, tipo := range stats.TiposCasos {
		f.SetCellValue(sheetTipos, fmt.Sprintf("A%d", i+2), tipo.Label)
		f.SetCellValue(sheetTipos, fmt.Sprintf("B%d", i+2), tipo.Value)
	}

	// --- Monthly series sheet ---
	const sheetMeses = "Casos por mes"
	if _, err := f.NewSheet(sheetMeses); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetCellValue(sheetMeses, "A1", "Mes")
	f.SetCellValue(sheetMeses, "B1", "Nuevos")
	f.SetCellValue(sheetMeses, "C1", "Cerrados")
	f.SetCellStyle(sheetMeses, "A1", "C1", titleStyle)
	for i, label := range stats.CasosPorMes.Labels {
		f.SetCellValue(sheetMeses, fmt.Sprintf("A%d", i+2), label)
		f.SetCellValue(sheetMeses, fmt.Sprintf("B%d", i+2), stats.CasosPorMes.Nuevos[i])
		f.SetCellValue(sheetMeses, fmt.Sprintf("C%d", i+2), stats.CasosPorMes.Cerrados[i])
	}

	return f.WriteToBuffer()
}
