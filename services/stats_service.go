package services

import (
	"asistente_legal_go/db"
	"asistente_legal_go/models"
	"math"
	"time"
)

// ComputeEstadisticas recomputes the full statistics snapshot from the
// current collections. Every call scans everything; nothing is cached or
// maintained incrementally.
func ComputeEstadisticas(s *db.Store) models.Estadisticas {
	clientes := ListClientes(s)
	casos := ListCasos(s)
	documentos := ListDocumentos(s)

	stats := models.Estadisticas{
		TotalClientes:   len(clientes),
		TotalCasos:      len(casos),
		TotalDocumentos: len(documentos),
		TiposCasos:      []models.TipoCount{},
	}

	// Partition by estado; unknown values fall outside all four buckets
	for _, c := range casos {
		switch c.Estado {
		case models.EstadoActivo:
			stats.CasosActivos++
		case models.EstadoPendiente:
			stats.CasosPendientes++
		case models.EstadoGanado:
			stats.CasosGanados++
		case models.EstadoCerrado:
			stats.CasosCerrados++
		}
	}

	// Type breakdown in first-seen order
	indexByTipo := map[string]int{}
	for _, c := range casos {
		i, ok := indexByTipo[c.Tipo]
		if !ok {
			i = len(stats.TiposCasos)
			indexByTipo[c.Tipo] = i
			stats.TiposCasos = append(stats.TiposCasos, models.TipoCount{Label: c.Tipo})
		}
		stats.TiposCasos[i].Value++
	}

	stats.CasosPorMes = casosPorMes(casos, time.Now())

	if len(casos) > 0 {
		stats.TasaExito = int(math.Round(float64(stats.CasosGanados) / float64(len(casos)) * 100))
	}
	return stats
}

// casosPorMes builds the trailing 6-bucket series, oldest month first.
// Buckets are keyed by short month name without the year, so cases from the
// same calendar month of different years land in one bucket. Known
// limitation, kept until the intended behavior is confirmed.
func casosPorMes(casos []models.Caso, now time.Time) models.SerieMensual {
	serie := models.SerieMensual{
		Labels:   make([]string, 0, 6),
		Nuevos:   make([]int, 6),
		Cerrados: make([]int, 6),
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	index := map[string]int{}
	for i := 5; i >= 0; i-- {
		label := MonthShortName(firstOfMonth.AddDate(0, -i, 0))
		index[label] = len(serie.Labels)
		serie.Labels = append(serie.Labels, label)
	}

	for _, c := range casos {
		i, ok := index[MonthShortName(c.CreatedAt)]
		if !ok {
			continue
		}
		serie.Nuevos[i]++
		if c.EstaResuelto() {
			serie.Cerrados[i]++
		}
	}
	return serie
}
