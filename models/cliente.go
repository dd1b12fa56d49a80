package models

import "time"

// Cliente represents a person or entity with associated legal cases.
// CasosCount mirrors the number of live cases referencing this client and is
// maintained by the case operations, never set directly by callers.
type Cliente struct {
	ID         string    `json:"id"`
	Nombre     string    `json:"nombre"`
	Telefono   string    `json:"telefono,omitempty"`
	Email      string    `json:"email,omitempty"`
	Direccion  string    `json:"direccion,omitempty"`
	Notas      string    `json:"notas,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	CasosCount int       `json:"casosCount"`
}
