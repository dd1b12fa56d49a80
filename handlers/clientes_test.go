package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"asistente_legal_go/models"
	"asistente_legal_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClienteHandler(t *testing.T) {
	h := setupTestHandler(t)

	t.Run("Success", func(t *testing.T) {
		body := jsonBody(t, map[string]string{"nombre": "María García", "telefono": "555-1234"})
		_, c, rec := setupEcho(http.MethodPost, "/api/clientes", body)

		require.NoError(t, h.CreateCliente(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var cliente models.Cliente
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cliente))
		assert.NotEmpty(t, cliente.ID)
		assert.Equal(t, "María García", cliente.Nombre)
	})

	t.Run("Missing nombre", func(t *testing.T) {
		body := jsonBody(t, map[string]string{"telefono": "555-1234"})
		_, c, rec := setupEcho(http.MethodPost, "/api/clientes", body)

		require.NoError(t, h.CreateCliente(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetClienteHandler(t *testing.T) {
	h := setupTestHandler(t)

	cliente, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "Juan"})
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/clientes/"+cliente.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(cliente.ID)

		require.NoError(t, h.GetCliente(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Juan")
	})

	t.Run("Not found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/clientes/nope", nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.GetCliente(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateClienteHandler(t *testing.T) {
	h := setupTestHandler(t)

	cliente, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "Ana", Telefono: "555-9012"})
	require.NoError(t, err)

	body := jsonBody(t, map[string]string{"email": "ana@email.com"})
	_, c, rec := setupEcho(http.MethodPut, "/api/clientes/"+cliente.ID, body)
	c.SetParamNames("id")
	c.SetParamValues(cliente.ID)

	require.NoError(t, h.UpdateCliente(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "ana@email.com", updated.Email)
	assert.Equal(t, "555-9012", updated.Telefono)
}

func TestDeleteClienteHandler(t *testing.T) {
	h := setupTestHandler(t)

	cliente, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "Carlos"})
	require.NoError(t, err)

	_, c, rec := setupEcho(http.MethodDelete, "/api/clientes/"+cliente.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(cliente.ID)

	require.NoError(t, h.DeleteCliente(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, services.ListClientes(h.store))
}
