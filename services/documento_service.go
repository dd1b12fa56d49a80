package services

import (
	"asistente_legal_go/db"
	"asistente_legal_go/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DocumentoInput carries the metadata for registering a document.
// File bytes are never uploaded or stored.
type DocumentoInput struct {
	CasoID    string `json:"casoId"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	Size      int64  `json:"size"`
	Categoria string `json:"categoria"`
}

// Validate enforces required-field presence
func (in DocumentoInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.CasoID, validation.Required),
		validation.Field(&in.Nombre, validation.Required),
	)
}

// ListDocumentos returns every document record in insertion order
func ListDocumentos(s *db.Store) []models.Documento {
	return db.ReadCollection[models.Documento](s, db.KeyDocumentos)
}

// ListDocumentosByCaso returns the documents referencing the given case
func ListDocumentosByCaso(s *db.Store, casoID string) []models.Documento {
	documentos := ListDocumentos(s)
	filtered := make([]models.Documento, 0, len(documentos))
	for _, d := range documentos {
		if d.CasoID == casoID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// CreateDocumento persists a new document record and bumps the parent case's
// document counter. A casoId pointing at a deleted case is tolerated.
func CreateDocumento(s *db.Store, input DocumentoInput) (*models.Documento, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	documento := models.Documento{
		ID:        uuid.New().String(),
		CasoID:    input.CasoID,
		Nombre:    input.Nombre,
		Tipo:      input.Tipo,
		Size:      input.Size,
		Categoria: input.Categoria,
		CreatedAt: time.Now(),
	}

	documentos := append(ListDocumentos(s), documento)
	if err := db.WriteCollection(s, db.KeyDocumentos, documentos); err != nil {
		return nil, err
	}

	if err := adjustDocumentosCount(s, input.CasoID, 1); err != nil {
		return nil, err
	}
	return &documento, nil
}

// DeleteDocumento removes the record and decrements the parent case's
// counter when the case still exists
func DeleteDocumento(s *db.Store, id string) error {
	documentos := ListDocumentos(s)
	var deleted *models.Documento
	filtered := make([]models.Documento, 0, len(documentos))
	for _, d := range documentos {
		if d.ID == id {
			deleted = &d
			continue
		}
		filtered = append(filtered, d)
	}
	if deleted == nil {
		return nil
	}

	if err := db.WriteCollection(s, db.KeyDocumentos, filtered); err != nil {
		return err
	}
	return adjustDocumentosCount(s, deleted.CasoID, -1)
}
