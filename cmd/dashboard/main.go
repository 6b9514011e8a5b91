package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/directory"
	"github.com/ayawo/ega.banking-console/pkg/report"
	"github.com/ayawo/ega.banking-console/pkg/session"

	"github.com/ayawo/ega.banking-console/config"
	"github.com/ayawo/ega.banking-console/pkg/app"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

var cliArgs struct {
	history bool
}

func init() {
	flag.BoolVar(&cliArgs.history, "history", false, "Include the transaction history")

	flag.Parse()
}

func printStats(stats report.AccountStats) {
	fmt.Printf("Accounts: %v (total balance %v)\n", stats.TotalAccounts, stats.SumBalanceTotal)
	for _, accountType := range []banking.AccountType{banking.AccountTypeCurrent, banking.AccountTypeSavings} {
		fmt.Printf("  %-8v %v accounts, balance %v\n",
			accountType, stats.CountByType[accountType], stats.SumBalanceByType[accountType])
	}
}

func printSeries(series report.MonthlySeries) {
	fmt.Println("Monthly deposits/withdrawals:")
	for bucket, label := range report.MonthLabels {
		if series.Deposits[bucket] == 0 && series.Withdrawals[bucket] == 0 {
			continue
		}
		fmt.Printf("  %v: %v deposits, %v withdrawals\n", label, series.Deposits[bucket], series.Withdrawals[bucket])
	}
}

func main() {
	appCfg := config.LoadAppConfig()

	diag.SetupLoggingSystem(func(setup diag.LoggingSystemSetup) {
		setup.SetLogLevel(appCfg.Log.Level.Value())
	})

	injector := app.BootstrapServices(appCfg)
	ctx := context.Background()

	if err := injector(func(sessionSvc session.Service, api banking.API) error {
		user, err := sessionSvc.CurrentUser(ctx)
		if err != nil {
			return err
		}

		dir := directory.New(directory.ScopeForUser(api, user))
		if err := dir.Load(ctx); err != nil {
			return err
		}
		accounts := dir.Accounts()
		printStats(report.AggregateAccounts(accounts))

		// Transaction history is per-client, admins only get account stats
		if user.Role != banking.RoleClient {
			return nil
		}

		transactions, err := api.ListClientTransactions(ctx, user.ClientID)
		if err != nil {
			return err
		}
		printSeries(report.BinMonthly(transactions))

		if cliArgs.history {
			own := report.NewOwnAccounts(accounts)
			fmt.Println("History:")
			for _, trx := range transactions {
				fmt.Printf("  %v %10v  %v\n",
					trx.Date.Format("2006-01-02"), trx.Amount, report.Narrative(trx, own))
			}
		}
		return nil
	}); err != nil {
		logger.WithError(err).Error(ctx, "Failed to render dashboard")
		os.Exit(1)
	}
}
