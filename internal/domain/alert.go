package domain

// Period define quantos dias antes do dia atual fica o dia de comparação
type Period string

const (
	PeriodD1  Period = "d1"
	PeriodD7  Period = "d7"
	PeriodD30 Period = "d30"
)

func (p Period) Days() (int, bool) {
	switch p {
	case PeriodD1:
		return 1, true
	case PeriodD7:
		return 7, true
	case PeriodD30:
		return 30, true
	}
	return 0, false
}

type DailySummary struct {
	Date         string  `json:"date"`
	Metric       Metric  `json:"metric"`
	MetricLabel  string  `json:"metric_label"`
	ValueCurrent float64 `json:"value_current"`
	VarD1        float64 `json:"var_d1"`
	VarD7        float64 `json:"var_d7"`
	VarD30       float64 `json:"var_d30"`
}

type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

type Alert struct {
	ID           string    `json:"id"`
	Type         AlertType `json:"type"`
	Segment      string    `json:"segment"`
	SegmentValue string    `json:"segment_value"`
	Metric       Metric    `json:"metric"`
	Variation    float64   `json:"variation"`
	ZScore       float64   `json:"z_score"`
	Message      string    `json:"message"`
}

type InsightType string

const (
	InsightLargestDrop     InsightType = "largest_drop"
	InsightMainContributor InsightType = "main_contributor"
	InsightHighestGrowth   InsightType = "highest_growth"
)

type TopInsight struct {
	Type        InsightType `json:"type"`
	Label       string      `json:"label"`
	SegmentType string      `json:"segment_type"`
	Value       float64     `json:"value"`
	Variation   float64     `json:"variation"`
}

// AlertsReport agrupa o resumo diário, os alertas e os principais insights
type AlertsReport struct {
	DailySummary DailySummary `json:"daily_summary"`
	Alerts       []Alert      `json:"alerts"`
	TopInsights  []TopInsight `json:"top_insights"`
}
