package report

import (
	"github.com/ayawo/ega.banking-console/pkg/banking"
)

// MonthLabels are the fixed chart labels, January first
var MonthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlySeries holds per-month transaction counts aligned with MonthLabels
type MonthlySeries struct {
	Deposits    [12]int
	Withdrawals [12]int
}

// BinMonthly counts deposits and withdrawals per calendar month. Transfers
// are not counted. Transactions from different years fall into the same
// month bucket
func BinMonthly(transactions []banking.Transaction) MonthlySeries {
	var series MonthlySeries
	for _, trx := range transactions {
		if trx.Date.IsZero() {
			continue
		}
		bucket := int(trx.Date.Month()) - 1
		switch trx.Kind {
		case banking.KindDeposit:
			series.Deposits[bucket]++
		case banking.KindWithdrawal:
			series.Withdrawals[bucket]++
		}
	}
	return series
}
