package handlers

import (
	"net/http"

	"asistente_legal_go/services"

	"github.com/labstack/echo/v4"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetEstadisticas returns the statistics snapshot, recomputed on every call
func (h *Handler) GetEstadisticas(c echo.Context) error {
	return c.JSON(http.StatusOK, services.ComputeEstadisticas(h.store))
}

// ExportEstadisticas serves the statistics snapshot as an Excel download
func (h *Handler) ExportEstadisticas(c echo.Context) error {
	buf, err := services.ExportEstadisticas(h.store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="estadisticas.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMimeType, buf.Bytes())
}
