package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ayawo/ega.banking-console/pkg/session"

	"github.com/ayawo/ega.banking-console/config"
	"github.com/ayawo/ega.banking-console/pkg/app"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

var cliArgs struct {
	cmd      string
	user     string
	password string
}

func init() {
	flag.StringVar(&cliArgs.cmd, "cmd", "", "Command to run. Available commands: login, logout, whoami")
	flag.StringVar(&cliArgs.user, "user", "", "Username to sign in with")
	flag.StringVar(&cliArgs.password, "password", "", "Password to sign in with")

	flag.Parse()
}

func showHelpAndExit() {
	flag.PrintDefaults()
	os.Exit(1)
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
	case "login":
		if cliArgs.user == "" || cliArgs.password == "" {
			showHelpAndExit()
		}
		if err := injector(func(sessionSvc session.Service) error {
			user, err := sessionSvc.Login(ctx, cliArgs.user, cliArgs.password)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %v (%v)\n", user.Username, user.Role)
			return nil
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to sign in")
			os.Exit(1)
		}
	case "logout":
		if err := injector(func(sessionSvc session.Service) error {
			return sessionSvc.Logout(ctx)
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to sign out")
			os.Exit(1)
		}
	case "whoami":
		if err := injector(func(sessionSvc session.Service) error {
			user, err := sessionSvc.CurrentUser(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%v (%v)\n", user.Username, user.Role)
			return nil
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to resolve current user")
			os.Exit(1)
		}
	default:
		flag.PrintDefaults()
		os.Exit(1)
	}
}
