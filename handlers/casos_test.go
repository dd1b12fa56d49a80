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

func TestCreateCasoHandler(t *testing.T) {
	h := setupTestHandler(t)

	cliente, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "María"})
	require.NoError(t, err)

	body := jsonBody(t, map[string]string{
		"clienteId": cliente.ID,
		"titulo":    "Demanda civil",
		"tipo":      models.TipoCivil,
	})
	_, c, rec := setupEcho(http.MethodPost, "/api/casos", body)

	require.NoError(t, h.CreateCaso(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var caso models.Caso
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caso))
	assert.Equal(t, models.EstadoActivo, caso.Estado)
	assert.Len(t, caso.Timeline, 1)
	assert.Equal(t, 1, services.GetCliente(h.store, cliente.ID).CasosCount)
}

func TestGetCasosHandlerFilters(t *testing.T) {
	h := setupTestHandler(t)

	c1, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "Uno"})
	require.NoError(t, err)
	c2, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "Dos"})
	require.NoError(t, err)

	_, err = services.CreateCaso(h.store, services.CasoInput{ClienteID: c1.ID, Titulo: "A"})
	require.NoError(t, err)
	_, err = services.CreateCaso(h.store, services.CasoInput{ClienteID: c2.ID, Titulo: "B", Estado: models.EstadoGanado})
	require.NoError(t, err)

	t.Run("By cliente", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/casos?clienteId="+c1.ID, nil)

		require.NoError(t, h.GetCasos(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var casos []models.Caso
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &casos))
		require.Len(t, casos, 1)
		assert.Equal(t, "A", casos[0].Titulo)
	})

	t.Run("By estado", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/casos?estado=ganado", nil)

		require.NoError(t, h.GetCasos(c))

		var casos []models.Caso
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &casos))
		require.Len(t, casos, 1)
		assert.Equal(t, "B", casos[0].Titulo)
	})

	t.Run("Invalid estado is ignored", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/casos?estado=archivado", nil)

		require.NoError(t, h.GetCasos(c))

		var casos []models.Caso
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &casos))
		assert.Len(t, casos, 2)
	})
}

func TestUpdateCasoHandlerEstadoChange(t *testing.T) {
	h := setupTestHandler(t)

	cliente, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "Ana"})
	require.NoError(t, err)
	caso, err := services.CreateCaso(h.store, services.CasoInput{ClienteID: cliente.ID, Titulo: "X"})
	require.NoError(t, err)

	body := jsonBody(t, map[string]string{"estado": models.EstadoGanado})
	_, c, rec := setupEcho(http.MethodPut, "/api/casos/"+caso.ID, body)
	c.SetParamNames("id")
	c.SetParamValues(caso.ID)

	require.NoError(t, h.UpdateCaso(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Caso
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Len(t, updated.Timeline, 2)
	assert.Contains(t, updated.Timeline[1].Descripcion, "ganado")
}

func TestAddTimelineEventHandler(t *testing.T) {
	h := setupTestHandler(t)

	cliente, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "Luis"})
	require.NoError(t, err)
	caso, err := services.CreateCaso(h.store, services.CasoInput{ClienteID: cliente.ID, Titulo: "Y"})
	require.NoError(t, err)

	body := jsonBody(t, map[string]string{"accion": "Audiencia programada", "descripcion": "Sala 3"})
	_, c, rec := setupEcho(http.MethodPost, "/api/casos/"+caso.ID+"/timeline", body)
	c.SetParamNames("id")
	c.SetParamValues(caso.ID)

	require.NoError(t, h.AddTimelineEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Caso
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Len(t, updated.Timeline, 2)
	assert.Equal(t, "Audiencia programada", updated.Timeline[1].Accion)
}

func TestDeleteCasoHandlerUnknownIDIsNoOp(t *testing.T) {
	h := setupTestHandler(t)

	_, c, rec := setupEcho(http.MethodDelete, "/api/casos/nope", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.DeleteCaso(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
