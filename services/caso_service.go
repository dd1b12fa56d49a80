package services

import (
	"asistente_legal_go/db"
	"asistente_legal_go/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CasoInput carries the caller-supplied fields for creating a case
type CasoInput struct {
	ClienteID      string     `json:"clienteId"`
	Titulo         string     `json:"titulo"`
	Tipo           string     `json:"tipo"`
	Descripcion    string     `json:"descripcion"`
	Estado         string     `json:"estado"`
	Prioridad      string     `json:"prioridad"`
	FechaAudiencia *time.Time `json:"fechaAudiencia"`
	Notas          string     `json:"notas"`
}

// Validate enforces required-field presence
func (in CasoInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ClienteID, validation.Required),
		validation.Field(&in.Titulo, validation.Required),
	)
}

// CasoUpdate is a partial update; nil fields keep their current value.
// Counters and the timeline are maintained internally and cannot be set here.
type CasoUpdate struct {
	ClienteID      *string    `json:"clienteId"`
	Titulo         *string    `json:"titulo"`
	Tipo           *string    `json:"tipo"`
	Descripcion    *string    `json:"descripcion"`
	Estado         *string    `json:"estado"`
	Prioridad      *string    `json:"prioridad"`
	FechaAudiencia *time.Time `json:"fechaAudiencia"`
	Notas          *string    `json:"notas"`
}

// EventoInput carries the fields of a manually-added timeline entry
type EventoInput struct {
	Accion      string `json:"accion"`
	Descripcion string `json:"descripcion"`
}

// Validate enforces required-field presence
func (in EventoInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Accion, validation.Required),
	)
}

// ListCasos returns every case in insertion order
func ListCasos(s *db.Store) []models.Caso {
	return db.ReadCollection[models.Caso](s, db.KeyCasos)
}

// GetCaso returns the case with the given id, or nil when absent
func GetCaso(s *db.Store, id string) *models.Caso {
	for _, c := range ListCasos(s) {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// ListCasosByCliente returns the cases referencing the given client
func ListCasosByCliente(s *db.Store, clienteID string) []models.Caso {
	casos := ListCasos(s)
	filtered := make([]models.Caso, 0, len(casos))
	for _, c := range casos {
		if c.ClienteID == clienteID {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// CreateCaso persists a new case with a seed timeline entry and bumps the
// parent client's case counter. A clienteId pointing at a deleted client is
// tolerated; the counter update is then a no-op.
func CreateCaso(s *db.Store, input CasoInput) (*models.Caso, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	estado := input.Estado
	if estado == "" {
		estado = models.EstadoActivo
	}
	prioridad := input.Prioridad
	if prioridad == "" {
		prioridad = models.PrioridadMedia
	}

	now := time.Now()
	caso := models.Caso{
		ID:              uuid.New().String(),
		ClienteID:       input.ClienteID,
		Titulo:          input.Titulo,
		Tipo:            input.Tipo,
		Descripcion:     input.Descripcion,
		Estado:          estado,
		Prioridad:       prioridad,
		FechaAudiencia:  input.FechaAudiencia,
		Notas:           input.Notas,
		CreatedAt:       now,
		DocumentosCount: 0,
		Timeline: []models.EventoTimeline{{
			Fecha:       now,
			Accion:      "Caso creado",
			Descripcion: "Se inició el registro del caso",
		}},
	}

	casos := append(ListCasos(s), caso)
	if err := db.WriteCollection(s, db.KeyCasos, casos); err != nil {
		return nil, err
	}

	if err := adjustCasosCount(s, input.ClienteID, 1); err != nil {
		return nil, err
	}
	return &caso, nil
}

// UpdateCaso merges the provided fields into an existing case. When the
// estado actually changes value, a timeline entry is appended before the
// merge is persisted. An unknown id returns nil, not an error.
func UpdateCaso(s *db.Store, id string, upd CasoUpdate) (*models.Caso, error) {
	casos := ListCasos(s)
	for i := range casos {
		if casos[i].ID != id {
			continue
		}

		if upd.Estado != nil && *upd.Estado != casos[i].Estado {
			casos[i].Timeline = append(casos[i].Timeline, models.EventoTimeline{
				Fecha:       time.Now(),
				Accion:      "Cambio de estado",
				Descripcion: "Estado cambiado a: " + *upd.Estado,
			})
		}

		if upd.ClienteID != nil {
			casos[i].ClienteID = *upd.ClienteID
		}
		if upd.Titulo != nil {
			casos[i].Titulo = *upd.Titulo
		}
		if upd.Tipo != nil {
			casos[i].Tipo = *upd.Tipo
		}
		if upd.Descripcion != nil {
			casos[i].Descripcion = *upd.Descripcion
		}
		if upd.Estado != nil {
			casos[i].Estado = *upd.Estado
		}
		if upd.Prioridad != nil {
			casos[i].Prioridad = *upd.Prioridad
		}
		if upd.FechaAudiencia != nil {
			casos[i].FechaAudiencia = upd.FechaAudiencia
		}
		if upd.Notas != nil {
			casos[i].Notas = *upd.Notas
		}

		if err := db.WriteCollection(s, db.KeyCasos, casos); err != nil {
			return nil, err
		}
		return &casos[i], nil
	}
	return nil, nil
}

// DeleteCaso removes the case and decrements the parent client's counter
// when the client still exists. Documents referencing the case are left in
// place and become orphaned.
func DeleteCaso(s *db.Store, id string) error {
	casos := ListCasos(s)
	var deleted *models.Caso
	filtered := make([]models.Caso, 0, len(casos))
	for _, c := range casos {
		if c.ID == id {
			deleted = &c
			continue
		}
		filtered = append(filtered, c)
	}
	if deleted == nil {
		return nil
	}

	if err := db.WriteCollection(s, db.KeyCasos, filtered); err != nil {
		return err
	}
	return adjustCasosCount(s, deleted.ClienteID, -1)
}

// AddTimelineEvent appends a custom entry with fecha set to now.
// An unknown case id returns nil, not an error.
func AddTimelineEvent(s *db.Store, casoID string, input EventoInput) (*models.Caso, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	casos := ListCasos(s)
	for i := range casos {
		if casos[i].ID != casoID {
			continue
		}

		casos[i].Timeline = append(casos[i].Timeline, models.EventoTimeline{
			Fecha:       time.Now(),
			Accion:      input.Accion,
			Descripcion: input.Descripcion,
		})

		if err := db.WriteCollection(s, db.KeyCasos, casos); err != nil {
			return nil, err
		}
		return &casos[i], nil
	}
	return nil, nil
}

// adjustDocumentosCount shifts a case's live-document counter, flooring at
// zero. A missing case is a no-op.
func adjustDocumentosCount(s *db.Store, casoID string, delta int) error {
	casos := ListCasos(s)
	for i := range casos {
		if casos[i].ID != casoID {
			continue
		}

		count := casos[i].DocumentosCount + delta
		if count < 0 {
			count = 0
		}
		casos[i].DocumentosCount = count
		return db.WriteCollection(s, db.KeyCasos, casos)
	}
	return nil
}
