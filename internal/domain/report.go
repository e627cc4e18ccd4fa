package domain

import "github.com/shopspring/decimal"

// SalespersonTotal é o total vendido (em moeda local) por vendedor
type SalespersonTotal struct {
	Salesperson *string         `json:"vendedor"`
	Total       decimal.Decimal `json:"total_ventas"`
}

// CategoryBrandSummary resume produtos e vendas por categoria e marca
type CategoryBrandSummary struct {
	Category     string          `json:"categoria"`
	Brand        string          `json:"marca"`
	ProductCount int             `json:"productos"`
	LineCount    int             `json:"lineas"`
	Total        decimal.Decimal `json:"total_ventas"`
}
