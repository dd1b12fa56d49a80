package handlers

import (
	"net/http"

	"asistente_legal_go/services"

	"github.com/labstack/echo/v4"
)

// GetClientes returns every client
func (h *Handler) GetClientes(c echo.Context) error {
	return c.JSON(http.StatusOK, services.ListClientes(h.store))
}

// GetCliente returns a single client by id
func (h *Handler) GetCliente(c echo.Context) error {
	cliente := services.GetCliente(h.store, c.Param("id"))
	if cliente == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Cliente no encontrado",
		})
	}
	return c.JSON(http.StatusOK, cliente)
}

// CreateCliente registers a new client
func (h *Handler) CreateCliente(c echo.Context) error {
	var input services.ClienteInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Cuerpo de la petición inválido",
		})
	}

	cliente, err := services.CreateCliente(h.store, input)
	if err != nil {
		return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cliente)
}

// UpdateCliente merges a partial update into an existing client
func (h *Handler) UpdateCliente(c echo.Context) error {
	var upd services.ClienteUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Cuerpo de la petición inválido",
		})
	}

	cliente, err := services.UpdateCliente(h.store, c.Param("id"), upd)
	if err != nil {
		return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
	}
	if cliente == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Cliente no encontrado",
		})
	}
	return c.JSON(http.StatusOK, cliente)
}

// DeleteCliente removes a client. Cases referencing it are kept.
func (h *Handler) DeleteCliente(c echo.Context) error {
	if err := services.DeleteCliente(h.store, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
