package report

import (
	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/shopspring/decimal"
)

// AccountStats holds aggregate figures over a loaded account list
type AccountStats struct {
	TotalAccounts    int
	CountByType      map[banking.AccountType]int
	SumBalanceTotal  decimal.Decimal
	SumBalanceByType map[banking.AccountType]decimal.Decimal
}

// AggregateAccounts computes counts and balance sums per account type.
// Both known types are always present in the maps so views can render
// zero rows without presence checks
func AggregateAccounts(accounts []banking.Account) AccountStats {
	stats := AccountStats{
		TotalAccounts: len(accounts),
		CountByType: map[banking.AccountType]int{
			banking.AccountTypeCurrent: 0,
			banking.AccountTypeSavings: 0,
		},
		SumBalanceTotal: decimal.Zero,
		SumBalanceByType: map[banking.AccountType]decimal.Decimal{
			banking.AccountTypeCurrent: decimal.Zero,
			banking.AccountTypeSavings: decimal.Zero,
		},
	}
	for _, account := range accounts {
		stats.CountByType[account.Type]++
		stats.SumBalanceTotal = stats.SumBalanceTotal.Add(account.Balance)
		stats.SumBalanceByType[account.Type] = stats.SumBalanceByType[account.Type].Add(account.Balance)
	}
	return stats
}
