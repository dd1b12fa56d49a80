package services

import (
	"asistente_legal_go/db"
	"asistente_legal_go/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ClienteInput carries the caller-supplied fields for creating a client
type ClienteInput struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
	Notas     string `json:"notas"`
}

// Validate enforces required-field presence
func (in ClienteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Nombre, validation.Required),
	)
}

// ClienteUpdate is a partial update; nil fields keep their current value.
// CasosCount is deliberately absent: it is maintained by the case operations.
type ClienteUpdate struct {
	Nombre    *string `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
	Notas     *string `json:"notas"`
}

// ListClientes returns every client in insertion order
func ListClientes(s *db.Store) []models.Cliente {
	return db.ReadCollection[models.Cliente](s, db.KeyClientes)
}

// GetCliente returns the client with the given id, or nil when absent
func GetCliente(s *db.Store, id string) *models.Cliente {
	for _, c := range ListClientes(s) {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// CreateCliente assigns id and createdAt, persists the collection and
// returns the new client
func CreateCliente(s *db.Store, input ClienteInput) (*models.Cliente, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cliente := models.Cliente{
		ID:         uuid.New().String(),
		Nombre:     input.Nombre,
		Telefono:   input.Telefono,
		Email:      input.Email,
		Direccion:  input.Direccion,
		Notas:      input.Notas,
		CreatedAt:  time.Now(),
		CasosCount: 0,
	}

	clientes := append(ListClientes(s), cliente)
	if err := db.WriteCollection(s, db.KeyClientes, clientes); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// UpdateCliente merges the provided fields into an existing client.
// An unknown id returns nil; that is a normal outcome, not an error.
func UpdateCliente(s *db.Store, id string, upd ClienteUpdate) (*models.Cliente, error) {
	clientes := ListClientes(s)
	for i := range clientes {
		if clientes[i].ID != id {
			continue
		}

		if upd.Nombre != nil {
			clientes[i].Nombre = *upd.Nombre
		}
		if upd.Telefono != nil {
			clientes[i].Telefono = *upd.Telefono
		}
		if upd.Email != nil {
			clientes[i].Email = *upd.Email
		}
		if upd.Direccion != nil {
			clientes[i].Direccion = *upd.Direccion
		}
		if upd.Notas != nil {
			clientes[i].Notas = *upd.Notas
		}

		if err := db.WriteCollection(s, db.KeyClientes, clientes); err != nil {
			return nil, err
		}
		return &clientes[i], nil
	}
	return nil, nil
}

// DeleteCliente removes the client. Its cases are left in place and become
// orphaned; lookups through them resolve the client as not found.
func DeleteCliente(s *db.Store, id string) error {
	clientes := ListClientes(s)
	filtered := make([]models.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	return db.WriteCollection(s, db.KeyClientes, filtered)
}

// adjustCasosCount shifts a client's live-case counter, flooring at zero.
// A missing client is a no-op: the dangling reference is tolerated.
func adjustCasosCount(s *db.Store, clienteID string, delta int) error {
	clientes := ListClientes(s)
	for i := range clientes {
		if clientes[i].ID != clienteID {
			continue
		}

		count := clientes[i].CasosCount + delta
		if count < 0 {
			count = 0
		}
		clientes[i].CasosCount = count
		return db.WriteCollection(s, db.KeyClientes, clientes)
	}
	return nil
}
