package models

import "time"

// Case status constants
const (
	EstadoActivo    = "activo"
	EstadoPendiente = "pendiente"
	EstadoGanado    = "ganado"
	EstadoCerrado   = "cerrado"
)

// Case type constants
const (
	TipoPenal          = "Penal"
	TipoCivil          = "Civil"
	TipoFamiliar       = "Familiar"
	TipoLaboral        = "Laboral"
	TipoMercantil      = "Mercantil"
	TipoAdministrativo = "Administrativo"
	TipoOtro           = "Otro"
)

// Priority constants
const (
	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// EventoTimeline is a single entry in a case's append-only history
type EventoTimeline struct {
	Fecha       time.Time `json:"fecha"`
	Accion      string    `json:"accion"`
	Descripcion string    `json:"descripcion"`
}

// Caso represents a tracked legal matter belonging to one client.
// DocumentosCount mirrors the number of live documents referencing this case;
// Timeline grows by one entry on every estado change and is never rewritten.
type Caso struct {
	ID              string           `json:"id"`
	ClienteID       string           `json:"clienteId"`
	Titulo          string           `json:"titulo"`
	Tipo            string           `json:"tipo"`
	Descripcion     string           `json:"descripcion,omitempty"`
	Estado          string           `json:"estado"`
	Prioridad       string           `json:"prioridad"`
	FechaAudiencia  *time.Time       `json:"fechaAudiencia,omitempty"`
	Notas           string           `json:"notas,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	DocumentosCount int              `json:"documentosCount"`
	Timeline        []EventoTimeline `json:"timeline"`
}

// EstaResuelto reports whether the case reached a terminal estado
func (c *Caso) EstaResuelto() bool {
	return c.Estado == EstadoCerrado || c.Estado == EstadoGanado
}

// IsValidEstado checks if the estado is one of the known values
func IsValidEstado(estado string) bool {
	switch estado {
	case EstadoActivo, EstadoPendiente, EstadoGanado, EstadoCerrado:
		return true
	}
	return false
}
