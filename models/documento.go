package models

import "time"

// Document category constants
const (
	CategoriaEvidencia      = "evidencia"
	CategoriaContratos      = "contratos"
	CategoriaComunicaciones = "comunicaciones"
	CategoriaOtros          = "otros"
)

// Documento is the metadata record for a file associated with a case.
// Only metadata is modeled; file bytes are never stored.
type Documento struct {
	ID        string    `json:"id"`
	CasoID    string    `json:"casoId"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo"` // MIME type
	Size      int64     `json:"size"`
	Categoria string    `json:"categoria"`
	CreatedAt time.Time `json:"createdAt"`
}
