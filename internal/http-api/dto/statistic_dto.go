package dto

// StatisticResponse summarizes the feedback recorded for one product.
type StatisticResponse struct {
	AverageScore       float64 `json:"averageScore"`
	SignificantSummary string  `json:"significantSummary"`
}
