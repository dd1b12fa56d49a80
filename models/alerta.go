package models

import "time"

// Alert type constants. The type is frozen when the alert is created and is
// never recomputed from the date afterwards.
const (
	AlertaUrgent   = "urgent"
	AlertaUpcoming = "upcoming"
)

// Alerta is a date-associated reminder, optionally linked to a case
type Alerta struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Type        string     `json:"type"`
	CasoID      string     `json:"casoId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	Leida       bool       `json:"leida"`
}
