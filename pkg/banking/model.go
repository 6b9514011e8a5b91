package banking

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is a type of an account. Wire values come from the
// banking service as-is
type AccountType string

const (
	// AccountTypeCurrent represents a current account, may have negative balance (overdraft)
	AccountTypeCurrent AccountType = "COURANT"

	// AccountTypeSavings represents a savings account
	AccountTypeSavings AccountType = "EPARGNE"
)

// TransactionKind is a kind of a transaction as reported by the banking service
type TransactionKind string

const (
	// KindDeposit is a deposit transaction
	KindDeposit TransactionKind = "DEPOT"

	// KindWithdrawal is a withdrawal transaction
	KindWithdrawal TransactionKind = "RETRAIT"

	// KindTransfer is a transfer between two accounts
	KindTransfer TransactionKind = "VIREMENT"
)

// Timestamp is a transaction execution time. The banking service reports
// local date times without a zone so regular RFC3339 parsing can not be used
type Timestamp struct {
	time.Time
}

const wireTimeLayout = "2006-01-02T15:04:05"

// UnmarshalJSON parses service local date times, with an RFC3339 fallback
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(wireTimeLayout, raw, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// MarshalJSON formats the timestamp the way the service reports it
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(wireTimeLayout) + `"`), nil
}

// Account represents a customer account as reported by the banking service.
// Accounts are read-only on this side, authoritative balances always come
// from a fresh load
type Account struct {
	Number    string          `json:"numeroCompte"`
	OwnerName string          `json:"proprietaireNom"`
	Type      AccountType     `json:"typeCompte"`
	Balance   decimal.Decimal `json:"solde"`
}

// Transaction is an immutable transaction history record
type Transaction struct {
	ID                       int64           `json:"id"`
	Kind                     TransactionKind `json:"type"`
	Amount                   decimal.Decimal `json:"montant"`
	SourceAccountNumber      string          `json:"numeroCompteSource"`
	DestinationAccountNumber string          `json:"numeroCompteDestination,omitempty"`
	SourceOwnerName          string          `json:"proprietaireSource,omitempty"`
	DestinationOwnerName     string          `json:"proprietaireDestination,omitempty"`
	Date                     Timestamp       `json:"date"`
}

// OperationRequest is a create-transaction payload
type OperationRequest struct {
	Kind                     TransactionKind `json:"type"`
	Amount                   decimal.Decimal `json:"montant"`
	SourceAccountNumber      string          `json:"numeroCompteSource"`
	DestinationAccountNumber string          `json:"numeroCompteDestination,omitempty"`
}

// NewAccountRequest is a create-account payload
type NewAccountRequest struct {
	ClientID       int64           `json:"clientId"`
	Type           AccountType     `json:"typeCompte"`
	InitialBalance decimal.Decimal `json:"soldeInitial"`
}

// Role of a signed-in user
type Role string

const (
	// RoleAdmin can see all accounts
	RoleAdmin Role = "ADMIN"

	// RoleClient can see own accounts only
	RoleClient Role = "CLIENT"
)

// User is an identity record of a signed-in user
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	ClientID   int64  `json:"clientId"`
	ClientName string `json:"clientNom"`
}
