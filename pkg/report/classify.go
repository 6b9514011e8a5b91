package report

import (
	"github.com/ayawo/ega.banking-console/pkg/banking"
)

// Class is a semantic direction of a transaction from the viewer's
// perspective
type Class string

const (
	// ClassDeposit - a deposit on one of the viewer's accounts
	ClassDeposit Class = "deposit"

	// ClassWithdrawal - a withdrawal off one of the viewer's accounts
	ClassWithdrawal Class = "withdrawal"

	// ClassTransferSent - a transfer where the viewer owns the source account
	ClassTransferSent Class = "transfer-sent"

	// ClassTransferReceived - a transfer where the viewer owns the
	// destination account
	ClassTransferReceived Class = "transfer-received"

	// ClassOther - neither side belongs to the viewer. Should not occur for
	// a correctly scoped history but is handled defensively
	ClassOther Class = "other"
)

// OwnAccounts is the set of account numbers belonging to the signed-in
// customer
type OwnAccounts map[string]struct{}

// NewOwnAccounts derives the own-account set from a loaded account list
func NewOwnAccounts(accounts []banking.Account) OwnAccounts {
	own := make(OwnAccounts, len(accounts))
	for _, account := range accounts {
		own[account.Number] = struct{}{}
	}
	return own
}

// Contains tells if a given account number belongs to the viewer
func (own OwnAccounts) Contains(number string) bool {
	_, ok := own[number]
	return ok
}

// Classify determines the semantic direction of a transaction. For
// transfers the source side is checked first, so a transfer between two of
// the viewer's own accounts classifies as sent
func Classify(trx banking.Transaction, own OwnAccounts) Class {
	switch trx.Kind {
	case banking.KindDeposit:
		return ClassDeposit
	case banking.KindWithdrawal:
		return ClassWithdrawal
	case banking.KindTransfer:
		if own.Contains(trx.SourceAccountNumber) {
			return ClassTransferSent
		}
		if own.Contains(trx.DestinationAccountNumber) {
			return ClassTransferReceived
		}
	}
	return ClassOther
}

// Narrative renders a per-transaction message for the history view
func Narrative(trx banking.Transaction, own OwnAccounts) string {
	switch Classify(trx, own) {
	case ClassDeposit:
		return "You made a deposit"
	case ClassWithdrawal:
		return "You made a withdrawal"
	case ClassTransferSent:
		return "You transferred to " + trx.DestinationOwnerName
	case ClassTransferReceived:
		return "You received from " + trx.SourceOwnerName
	default:
		return "Transaction"
	}
}
