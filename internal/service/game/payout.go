package game

import "github.com/shopspring/decimal"

// computePayout считает выплату payout = bet * multiplier (2 знака)
// с учетом лимита максимальной выплаты. Лимит применяется снижением
// множителя, чтобы для каждой записи истории выполнялось
// payout == betAmount * multiplier
func computePayout(bet, multiplier, maxPayout decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	payout := bet.Mul(multiplier).Round(2)

	if maxPayout.IsPositive() && payout.GreaterThan(maxPayout) {
		// Множитель округляется вниз, иначе выплата может превысить лимит
		multiplier = maxPayout.Div(bet).RoundDown(2)
		payout = bet.Mul(multiplier).Round(2)
	}

	return multiplier, payout
}
