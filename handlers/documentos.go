package handlers

import (
	"net/http"

	"asistente_legal_go/services"

	"github.com/labstack/echo/v4"
)

// GetDocumentos returns every document record, optionally filtered by casoId
func (h *Handler) GetDocumentos(c echo.Context) error {
	if casoID := c.QueryParam("casoId"); casoID != "" {
		return c.JSON(http.StatusOK, services.ListDocumentosByCaso(h.store, casoID))
	}
	return c.JSON(http.StatusOK, services.ListDocumentos(h.store))
}

// CreateDocumento registers document metadata for a case
func (h *Handler) CreateDocumento(c echo.Context) error {
	var input services.DocumentoInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Cuerpo de la petición inválido",
		})
	}

	documento, err := services.CreateDocumento(h.store, input)
	if err != nil {
		return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, documento)
}

// DeleteDocumento removes a document record
func (h *Handler) DeleteDocumento(c echo.Context) error {
	if err := services.DeleteDocumento(h.store, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
