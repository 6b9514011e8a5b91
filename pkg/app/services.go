package app

import (
	"database/sql"

	"go.uber.org/dig"

	"github.com/ayawo/ega.banking-console/config"
	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/dal"
	"github.com/ayawo/ega.banking-console/pkg/session"
)

// Injector is a function that will inject desired services
// to a target function
type Injector func(function interface{}) error

// BootstrapServices setup di container with all app services
func BootstrapServices(appCfg *config.AppConfig) Injector {
	c := dig.New()

	c.Provide(func() (*sql.DB, error) {
		return sql.Open(appCfg.Storage.Driver.Value(), appCfg.Storage.DSN.Value())
	})

	c.Provide(func(db *sql.DB) (dal.Storage, error) {
		return dal.NewSQLStorage(dal.WithSQLDb(db))
	})

	c.Provide(func(storage dal.Storage) banking.TokenSource {
		return session.NewStoredTokenSource(storage)
	})

	c.Provide(func(tokens banking.TokenSource) banking.API {
		return banking.NewAPI(
			appCfg.Banking.API.Value(),
			banking.WithTokenSource(tokens),
		)
	})

	c.Provide(func(api banking.API, storage dal.Storage) session.Service {
		return session.NewService(
			session.WithAPI(api),
			session.WithStorage(storage),
		)
	})

	return func(function interface{}) error {
		return c.Invoke(function)
	}
}
