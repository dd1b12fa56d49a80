package services

import (
	"asistente_legal_go/db"
	"asistente_legal_go/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// AlertaInput carries the caller-supplied fields for creating an alert.
// Type may be left empty to derive it from the date.
type AlertaInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Type        string     `json:"type"`
	CasoID      string     `json:"casoId"`
}

// Validate enforces required-field presence
func (in AlertaInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
	)
}

// ListAlertas returns every alert in insertion order
func ListAlertas(s *db.Store) []models.Alerta {
	return db.ReadCollection[models.Alerta](s, db.KeyAlertas)
}

// CreateAlerta persists a new unread alert. The urgency type is decided here
// once, from the 3-day threshold on the date, and never recomputed: it is a
// snapshot, not a live projection, so it can diverge from IsUrgent later.
func CreateAlerta(s *db.Store, input AlertaInput) (*models.Alerta, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tipo := input.Type
	if tipo == "" {
		tipo = models.AlertaUpcoming
		if input.Date != nil && IsUrgent(*input.Date) {
			tipo = models.AlertaUrgent
		}
	}

	alerta := models.Alerta{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Type:        tipo,
		CasoID:      input.CasoID,
		CreatedAt:   time.Now(),
		Leida:       false,
	}

	alertas := append(ListAlertas(s), alerta)
	if err := db.WriteCollection(s, db.KeyAlertas, alertas); err != nil {
		return nil, err
	}
	return &alerta, nil
}

// MarkAlertaLeida flags the alert as read. An unknown id returns nil, not
// an error.
func MarkAlertaLeida(s *db.Store, id string) (*models.Alerta, error) {
	alertas := ListAlertas(s)
	for i := range alertas {
		if alertas[i].ID != id {
			continue
		}

		alertas[i].Leida = true
		if err := db.WriteCollection(s, db.KeyAlertas, alertas); err != nil {
			return nil, err
		}
		return &alertas[i], nil
	}
	return nil, nil
}

// DeleteAlerta removes the alert
func DeleteAlerta(s *db.Store, id string) error {
	alertas := ListAlertas(s)
	filtered := make([]models.Alerta, 0, len(alertas))
	for _, a := range alertas {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	return db.WriteCollection(s, db.KeyAlertas, filtered)
}
