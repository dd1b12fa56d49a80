package models

// TipoCount is one case-type bucket of the statistics snapshot, in
// first-seen order
type TipoCount struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SerieMensual is the 6-month trailing series, oldest month first.
// Buckets are keyed by short month name alone, so the same calendar month
// from different years shares a bucket.
type SerieMensual struct {
	Labels   []string `json:"labels"`
	Nuevos   []int    `json:"nuevos"`
	Cerrados []int    `json:"cerrados"`
}

// Estadisticas is the aggregate view over all collections, fully recomputed
// on every call
type Estadisticas struct {
	TotalClientes   int          `json:"totalClientes"`
	TotalCasos      int          `json:"totalCasos"`
	TotalDocumentos int          `json:"totalDocumentos"`
	CasosActivos    int          `json:"casosActivos"`
	CasosGanados    int          `json:"casosGanados"`
	CasosPendientes int          `json:"casosPendientes"`
	CasosCerrados   int          `json:"casosCerrados"`
	TiposCasos      []TipoCount  `json:"tiposCasos"`
	CasosPorMes     SerieMensual `json:"casosPorMes"`
	TasaExito       int          `json:"tasaExito"`
}
