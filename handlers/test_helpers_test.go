package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"asistente_legal_go/db"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func setupTestHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := db.Open(":memory:", "test")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}
