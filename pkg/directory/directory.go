package directory

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

// Loader fetches the account set visible to the current viewer
type Loader func(ctx context.Context) ([]banking.Account, error)

// AdminScope makes a loader over all accounts of the bank
func AdminScope(api banking.API) Loader {
	return func(ctx context.Context) ([]banking.Account, error) {
		return api.ListAllAccounts(ctx)
	}
}

// ClientScope makes a loader over accounts of a given client
func ClientScope(api banking.API, clientID int64) Loader {
	return func(ctx context.Context) ([]banking.Account, error) {
		return api.ListClientAccounts(ctx, clientID)
	}
}

// ScopeForUser picks a loader matching the role of a signed-in user
func ScopeForUser(api banking.API, user *banking.User) Loader {
	if user.Role == banking.RoleAdmin {
		return AdminScope(api)
	}
	return ClientScope(api, user.ClientID)
}

// Directory holds the set of accounts visible to the current viewer and
// answers substring search queries over it
type Directory struct {
	loader Loader

	mu       sync.Mutex
	accounts []banking.Account
	issued   uint64
	applied  uint64
}

// New returns a directory bound to a given loader
func New(loader Loader) *Directory {
	return &Directory{loader: loader}
}

// Load fetches a fresh account set. On failure the previously loaded set is
// left unchanged. When loads overlap, a set fetched by an older call never
// overwrites the one installed by a newer call
func (d *Directory) Load(ctx context.Context) error {
	d.mu.Lock()
	d.issued++
	token := d.issued
	d.mu.Unlock()

	accounts, err := d.loader(ctx)
	if err != nil {
		if !banking.IsFetchError(err) {
			err = banking.NewFetchError(err)
		}
		return errors.Wrap(err, "Failed to load accounts")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if token < d.applied {
		logger.Warn(ctx, "Discarding stale account set, load %v superseded by %v", token, d.applied)
		return nil
	}
	d.applied = token
	d.accounts = accounts
	return nil
}

// Accounts returns the last successfully loaded set in original order
func (d *Directory) Accounts() []banking.Account {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]banking.Account(nil), d.accounts...)
}

// FindByNumber returns an account with a given number, if loaded
func (d *Directory) FindByNumber(number string) (banking.Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, account := range d.accounts {
		if account.Number == number {
			return account, true
		}
	}
	return banking.Account{}, false
}

// Search filters the last loaded set with a case-insensitive substring match
// against account number, owner name and type. A blank query returns the
// full set unfiltered. Each call filters from the full set, results of prior
// queries are never reused
func (d *Directory) Search(query string) []banking.Account {
	accounts := d.Accounts()
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return accounts
	}

	matched := make([]banking.Account, 0, len(accounts))
	for _, account := range accounts {
		if strings.Contains(strings.ToLower(account.Number), term) ||
			strings.Contains(strings.ToLower(account.OwnerName), term) ||
			strings.Contains(strings.ToLower(string(account.Type)), term) {
			matched = append(matched, account)
		}
	}
	return matched
}
