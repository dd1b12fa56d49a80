package handlers

import (
	"net/http"

	"asistente_legal_go/services"

	"github.com/labstack/echo/v4"
)

// GetAlertas returns every alert, read or not
func (h *Handler) GetAlertas(c echo.Context) error {
	return c.JSON(http.StatusOK, services.ListAlertas(h.store))
}

// CreateAlerta registers a new reminder
func (h *Handler) CreateAlerta(c echo.Context) error {
	var input services.AlertaInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Cuerpo de la petición inválido",
		})
	}

	alerta, err := services.CreateAlerta(h.store, input)
	if err != nil {
		return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, alerta)
}

// MarkAlertaLeida flags an alert as read
func (h *Handler) MarkAlertaLeida(c echo.Context) error {
	alerta, err := services.MarkAlertaLeida(h.store, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if alerta == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Alerta no encontrada",
		})
	}
	return c.JSON(http.StatusOK, alerta)
}

// DeleteAlerta removes an alert
func (h *Handler) DeleteAlerta(c echo.Context) error {
	if err := services.DeleteAlerta(h.store, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
