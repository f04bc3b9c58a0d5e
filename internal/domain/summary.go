package domain

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DataSummary traz estatísticas gerais do dataset carregado
type DataSummary struct {
	TotalRows       int       `json:"total_rows"`
	DateRange       DateRange `json:"date_range"`
	TotalTPV        float64   `json:"total_tpv"`
	AverageTicket   float64   `json:"average_ticket"`
	UniqueEntities  int       `json:"unique_entities"`
	UniqueProducts  int       `json:"unique_products"`
	UniqueMerchants float64   `json:"unique_merchants"` // soma de quantity_of_merchants
}

// DashboardData são as pré-agregações usadas pelos gráficos do painel
type DashboardData struct {
	TPVByProduct             []Row `json:"tpv_by_product"`
	TPVByEntity              []Row `json:"tpv_by_entity"`
	TPVByPaymentMethod       []Row `json:"tpv_by_payment_method"`
	AvgTicketByEntity        []Row `json:"avg_ticket_by_entity"`
	AvgTicketByProduct       []Row `json:"avg_ticket_by_product"`
	AvgTicketByPaymentMethod []Row `json:"avg_ticket_by_payment_method"`
	TPVByPriceTier           []Row `json:"tpv_by_price_tier"`
	TPVByInstallments        []Row `json:"tpv_by_installments"`
}
