package utils

import "time"

const MonthLayout = "2006-01"

// ParseMonth valida uma chave yyyy-MM. String vazia retorna nil.
func ParseMonth(monthStr string) (*time.Time, error) {
	if monthStr == "" {
		return nil, nil
	}

	month, err := time.Parse(MonthLayout, monthStr)
	if err != nil {
		return nil, err
	}

	return &month, nil
}
