package repoargs

import "github.com/shopspring/decimal"

type CreateUser struct {
	Username string
	Password string
	Coins    decimal.Decimal
}

// BalanceAggregation агрегаты по записям леджера юзера. Инвариант сверки:
// CreditedAmount - DebitedAmount должна равняться текущему балансу юзера.
type BalanceAggregation struct {
	CreditedAmount decimal.Decimal
	DebitedAmount  decimal.Decimal
}
