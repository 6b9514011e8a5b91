package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/directory"
	"github.com/ayawo/ega.banking-console/pkg/session"

	"github.com/ayawo/ega.banking-console/config"
	"github.com/ayawo/ega.banking-console/pkg/app"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

var cliArgs struct {
	cmd         string
	query       string
	clientID    int64
	accountType string
	balance     string
	confirm     bool
}

func init() {
	flag.StringVar(&cliArgs.cmd, "cmd", "", "Command to run. Available commands: list, search, create")
	flag.StringVar(&cliArgs.query, "query", "", "Search query (number, owner or type substring)")
	flag.Int64Var(&cliArgs.clientID, "client", 0, "Client ID to create an account for")
	flag.StringVar(&cliArgs.accountType, "type", "", "Account type to create: COURANT, EPARGNE")
	flag.StringVar(&cliArgs.balance, "balance", "0", "Initial balance of a new account")
	flag.BoolVar(&cliArgs.confirm, "confirm", false, "Actually submit the new account. Prints a preview otherwise")

	flag.Parse()
}

func showHelpAndExit() {
	flag.PrintDefaults()
	os.Exit(1)
}

func printAccounts(accounts []banking.Account) {
	for _, account := range accounts {
		fmt.Printf("%-12v %-24v %-8v %v\n", account.Number, account.OwnerName, account.Type, account.Balance)
	}
}

func main() {
	if cliArgs.cmd == "" {
		showHelpAndExit()
	}

	appCfg := config.LoadAppConfig()

	diag.SetupLoggingSystem(func(setup diag.LoggingSystemSetup) {
		setup.SetLogLevel(appCfg.Log.Level.Value())
	})

	injector := app.BootstrapServices(appCfg)
	ctx := context.Background()

	switch cliArgs.cmd {
	case "list", "search":
		if err := injector(func(sessionSvc session.Service, api banking.API) error {
			user, err := sessionSvc.CurrentUser(ctx)
			if err != nil {
				return err
			}
			dir := directory.New(directory.ScopeForUser(api, user))
			if err := dir.Load(ctx); err != nil {
				return err
			}
			printAccounts(dir.Search(cliArgs.query))
			return nil
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to list accounts")
			os.Exit(1)
		}
	case "create":
		if cliArgs.clientID == 0 || cliArgs.accountType == "" {
			showHelpAndExit()
		}
		initialBalance, err := decimal.NewFromString(cliArgs.balance)
		if err != nil {
			logger.WithError(err).Error(ctx, "Bad initial balance")
			showHelpAndExit()
		}
		newAccount := banking.NewAccountRequest{
			ClientID:       cliArgs.clientID,
			Type:           banking.AccountType(cliArgs.accountType),
			InitialBalance: initialBalance,
		}
		if !cliArgs.confirm {
			fmt.Printf("Will create a %v account for client %v with initial balance %v\n",
				newAccount.Type, newAccount.ClientID, newAccount.InitialBalance)
			fmt.Println("Re-run with -confirm to submit")
			return
		}
		if err := injector(func(api banking.API) error {
			account, err := api.CreateAccount(ctx, &newAccount)
			if err != nil {
				return err
			}
			fmt.Printf("Created account %v\n", account.Number)
			return nil
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to create account")
			os.Exit(1)
		}
	default:
		flag.PrintDefaults()
		os.Exit(1)
	}
}
