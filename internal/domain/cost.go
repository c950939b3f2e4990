package domain

type CostEntry struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Frequency   CostFrequency `json:"frequency"`
	StartDate   Date          `json:"start_date"`
}

type CreateCostRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	StartDate   Date    `json:"start_date"`
}
