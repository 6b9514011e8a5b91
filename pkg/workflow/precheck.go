package workflow

import (
	"github.com/shopspring/decimal"

	"github.com/ayawo/ega.banking-console/pkg/banking"
)

// CanWithdraw tells if a prospective amount can be taken off an account
// balance as known on this side. This is an advisory check only, the banking
// service remains the source of truth and may still reject the operation,
// e.g. after a concurrent spend
func CanWithdraw(amount decimal.Decimal, account banking.Account) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(account.Balance)
}
