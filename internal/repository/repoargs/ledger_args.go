package repoargs

import (
	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateLedgerEntry struct {
	UserID      int64
	TradeID     *int64
	Amount      decimal.Decimal
	Cause       domain.LedgerCauseType
	Description string
}
