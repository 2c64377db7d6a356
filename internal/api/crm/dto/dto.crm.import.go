package dto

// ImportResult số bản ghi đã ghi và số dòng bị bỏ qua khi import CSV
type ImportResult struct {
	Customers int `json:"customers"`
	Touches   int `json:"touches"`
	Skipped   int `json:"skipped"`
}
