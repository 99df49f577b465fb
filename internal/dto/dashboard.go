package dto

// DashboardSummaryResponse groups the high level balances shown on the
// landing page. The detalle maps keep the account level breakdown the
// frontend renders as drill down rows.
type DashboardSummaryResponse struct {
	Activos  DashboardActivos  `json:"activos"`
	Pasivos  DashboardPasivos  `json:"pasivos"`
	Ingresos DashboardIngresos `json:"ingresos"`
	Gastos   DashboardGastos   `json:"gastos"`
}

type DashboardActivos struct {
	Total   float64            `json:"total"`
	Detalle map[string]float64 `json:"detalle"`
}

type DashboardPasivos struct {
	Total   float64            `json:"total"`
	Detalle map[string]float64 `json:"detalle"`
}

type DashboardIngresos struct {
	Total   float64            `json:"total"`
	Detalle map[string]float64 `json:"detalle"`
}

type DashboardGastos struct {
	Total   float64            `json:"total"`
	Detalle map[string]float64 `json:"detalle"`
}
