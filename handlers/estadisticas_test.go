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

func TestGetEstadisticasHandler(t *testing.T) {
	h := setupTestHandler(t)

	cliente, err := services.CreateCliente(h.store, services.ClienteInput{Nombre: "María"})
	require.NoError(t, err)
	_, err = services.CreateCaso(h.store, services.CasoInput{ClienteID: cliente.ID, Titulo: "X", Tipo: models.TipoPenal, Estado: models.EstadoGanado})
	require.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/api/estadisticas", nil)

	require.NoError(t, h.GetEstadisticas(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.Estadisticas
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalClientes)
	assert.Equal(t, 1, stats.TotalCasos)
	assert.Equal(t, 100, stats.TasaExito)
	assert.Len(t, stats.CasosPorMes.Labels, 6)
}

func TestGetEstadisticasHandlerEmptyStore(t *testing.T) {
	h := setupTestHandler(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/estadisticas", nil)

	require.NoError(t, h.GetEstadisticas(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.Estadisticas
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalCasos)
	assert.Equal(t, 0, stats.TasaExito)
	assert.Empty(t, stats.TiposCasos)
}

func TestExportEstadisticasHandler(t *testing.T) {
	h := setupTestHandler(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/estadisticas/export", nil)

	require.NoError(t, h.ExportEstadisticas(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMimeType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "estadisticas.xlsx")
	assert.NotZero(t, rec.Body.Len())
}
