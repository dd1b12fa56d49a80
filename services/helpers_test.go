package services

import (
	"asistente_legal_go/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	s, err := db.Open(":memory:", "test")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func stringPtr(s string) *string {
	return &s
}
