package services

import (
	"asistente_legal_go/db"
	"asistente_legal_go/models"
	"fmt"
	"log"
	"math/rand"
	"time"
)

// SeedDemoData populates representative clients, cases and alerts on first
// run. It only acts when the client collection is empty, so a second call is
// a no-op.
func SeedDemoData(s *db.Store) error {
	if len(ListClientes(s)) > 0 {
		log.Println("[SEED] Existing data found, skipping demo seed")
		return nil
	}

	demoClientes := []ClienteInput{
		{Nombre: "María García López", Telefono: "555-1234", Email: "maria@email.com", Direccion: "Calle Principal 123"},
		{Nombre: "Juan Pérez Rodríguez", Telefono: "555-5678", Email: "juan@email.com", Direccion: "Av. Central 456"},
		{Nombre: "Ana Martínez Sánchez", Telefono: "555-9012", Email: "ana@email.com", Direccion: "Boulevard Sur 789"},
		{Nombre: "Carlos Hernández", Telefono: "555-3456", Email: "carlos@email.com", Direccion: "Calle Norte 321"},
		{Nombre: "Laura Jiménez", Telefono: "555-7890", Email: "laura@email.com", Direccion: "Av. Poniente 654"},
	}
	for _, in := range demoClientes {
		if _, err := CreateCliente(s, in); err != nil {
			return err
		}
	}

	tipos := []string{models.TipoPenal, models.TipoCivil, models.TipoFamiliar, models.TipoLaboral, models.TipoMercantil}
	estados := []string{
		models.EstadoActivo, models.EstadoActivo, models.EstadoActivo,
		models.EstadoPendiente, models.EstadoGanado, models.EstadoCerrado,
	}
	prioridades := []string{models.PrioridadAlta, models.PrioridadMedia, models.PrioridadBaja}

	for i, cliente := range ListClientes(s) {
		numCasos := rand.Intn(3) + 1
		for j := 0; j < numCasos; j++ {
			audiencia := time.Now().Add(time.Duration(rand.Intn(30*24)) * time.Hour)
			if _, err := CreateCaso(s, CasoInput{
				ClienteID:      cliente.ID,
				Titulo:         fmt.Sprintf("Caso %s #%d-%d", tipos[rand.Intn(len(tipos))], i+1, j+1),
				Tipo:           tipos[rand.Intn(len(tipos))],
				Descripcion:    "Descripción del caso legal en proceso.",
				Estado:         estados[rand.Intn(len(estados))],
				Prioridad:      prioridades[rand.Intn(len(prioridades))],
				FechaAudiencia: &audiencia,
			}); err != nil {
				return err
			}
		}
	}

	casos := ListCasos(s)
	primerCasoID := ""
	if len(casos) > 0 {
		primerCasoID = casos[0].ID
	}

	manana := time.Now().Add(24 * time.Hour)
	enCinco := time.Now().Add(5 * 24 * time.Hour)
	enSeis := time.Now().Add(6 * 24 * time.Hour)
	enSiete := time.Now().Add(7 * 24 * time.Hour)

	demoAlertas := []AlertaInput{
		{Type: models.AlertaUrgent, Title: "Audiencia mañana", Description: "Caso García vs Estado - 10:00 AM", Date: &manana, CasoID: primerCasoID},
		{Type: models.AlertaUpcoming, Title: "Entrega de documentos", Description: "Expediente completo requerido", Date: &enCinco},
		{Type: models.AlertaUpcoming, Title: "Reunión con cliente", Description: "Revisión de estrategia", Date: &enSeis},
		{Type: models.AlertaUpcoming, Title: "Vencimiento de plazo", Description: "Presentar apelación", Date: &enSiete},
	}
	for _, in := range demoAlertas {
		if _, err := CreateAlerta(s, in); err != nil {
			return err
		}
	}

	log.Printf("[SEED] Demo data created: %d clientes, %d casos, %d alertas",
		len(demoClientes), len(casos), len(demoAlertas))
	return nil
}
