package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/directory"
	"github.com/ayawo/ega.banking-console/pkg/session"
	"github.com/ayawo/ega.banking-console/pkg/workflow"

	"github.com/ayawo/ega.banking-console/config"
	"github.com/ayawo/ega.banking-console/pkg/app"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

var cliArgs struct {
	kind    string
	account string
	amount  string
	to      string
}

var kindByName = map[string]banking.TransactionKind{
	"deposit":  banking.KindDeposit,
	"withdraw": banking.KindWithdrawal,
	"transfer": banking.KindTransfer,
}

func init() {
	flag.StringVar(&cliArgs.kind, "kind", "", "Operation kind: deposit, withdraw, transfer")
	flag.StringVar(&cliArgs.account, "account", "", "Source account number")
	flag.StringVar(&cliArgs.amount, "amount", "", "Operation amount")
	flag.StringVar(&cliArgs.to, "to", "", "Destination account number (transfer only)")

	flag.Parse()
}

func showHelpAndExit() {
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	kind, ok := kindByName[cliArgs.kind]
	if !ok || cliArgs.account == "" || cliArgs.amount == "" {
		showHelpAndExit()
	}

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

		amount, err := decimal.NewFromString(cliArgs.amount)
		if err != nil {
			return errors.Wrap(err, "Bad amount")
		}

		dir := directory.New(directory.ScopeForUser(api, user))
		if err := dir.Load(ctx); err != nil {
			return err
		}
		source, ok := dir.FindByNumber(cliArgs.account)
		if !ok {
			return errors.Errorf("No visible account: %v", cliArgs.account)
		}

		op := workflow.New(kind,
			workflow.WithSubmitter(api),
			workflow.WithOnSuccess(dir.Load),
		)
		if err := op.Start(source); err != nil {
			return err
		}
		if err := op.SetAmount(amount); err != nil {
			return err
		}
		if kind == banking.KindTransfer {
			if err := op.SetDestination(cliArgs.to); err != nil {
				return err
			}
		}
		if err := op.ConfirmAmount(); err != nil {
			return err
		}

		trx, err := op.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Submitted %v of %v (transaction %v)\n", cliArgs.kind, amount, trx.ID)
		if refreshed, ok := dir.FindByNumber(source.Number); ok {
			fmt.Printf("Balance of %v is now %v\n", refreshed.Number, refreshed.Balance)
		}
		return nil
	}); err != nil {
		if banking.IsValidationError(err) {
			fmt.Println(err)
			os.Exit(1)
		}
		logger.WithError(err).Error(ctx, "Failed to submit operation")
		os.Exit(1)
	}
}
