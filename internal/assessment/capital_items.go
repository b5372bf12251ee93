package assessment

import "github.com/shopspring/decimal"

// AssessLiquidCapital sums bank balances and other liquid items.
// No disregard applies.
func AssessLiquidCapital(items []CapitalItem) decimal.Decimal {
	return sumItems(items)
}

// AssessNonLiquidCapital sums valuable items, trusts and other non-liquid capital.
func AssessNonLiquidCapital(items []CapitalItem) decimal.Decimal {
	return sumItems(items)
}

func sumItems(items []CapitalItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value)
	}
	return total.Round(2)
}
