package handlers

import (
	"net/http"

	"asistente_legal_go/models"
	"asistente_legal_go/services"

	"github.com/labstack/echo/v4"
)

// GetCasos returns every case, optionally filtered by clienteId or estado
func (h *Handler) GetCasos(c echo.Context) error {
	if clienteID := c.QueryParam("clienteId"); clienteID != "" {
		return c.JSON(http.StatusOK, services.ListCasosByCliente(h.store, clienteID))
	}

	casos := services.ListCasos(h.store)
	if estado := c.QueryParam("estado"); estado != "" && models.IsValidEstado(estado) {
		filtered := make([]models.Caso, 0, len(casos))
		for _, caso := range casos {
			if caso.Estado == estado {
				filtered = append(filtered, caso)
			}
		}
		casos = filtered
	}
	return c.JSON(http.StatusOK, casos)
}

// GetCaso returns a single case by id
func (h *Handler) GetCaso(c echo.Context) error {
	caso := services.GetCaso(h.store, c.Param("id"))
	if caso == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Caso no encontrado",
		})
	}
	return c.JSON(http.StatusOK, caso)
}

// CreateCaso registers a new case
func (h *Handler) CreateCaso(c echo.Context) error {
	var input services.CasoInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Cuerpo de la petición inválido",
		})
	}

	caso, err := services.CreateCaso(h.store, input)
	if err != nil {
		return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, caso)
}

// UpdateCaso merges a partial update into an existing case
func (h *Handler) UpdateCaso(c echo.Context) error {
	var upd services.CasoUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Cuerpo de la petición inválido",
		})
	}

	caso, err := services.UpdateCaso(h.store, c.Param("id"), upd)
	if err != nil {
		return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
	}
	if caso == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Caso no encontrado",
		})
	}
	return c.JSON(http.StatusOK, caso)
}

// DeleteCaso removes a case and releases its slot in the client's counter
func (h *Handler) DeleteCaso(c echo.Context) error {
	if err := services.DeleteCaso(h.store, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// AddTimelineEvent appends a manual entry to a case's history
func (h *Handler) AddTimelineEvent(c echo.Context) error {
	var input services.EventoInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Cuerpo de la petición inválido",
		})
	}

	caso, err := services.AddTimelineEvent(h.store, c.Param("id"), input)
	if err != nil {
		return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
	}
	if caso == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Caso no encontrado",
		})
	}
	return c.JSON(http.StatusOK, caso)
}
