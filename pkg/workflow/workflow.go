package workflow

import (
	"context"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"

	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

// State of an operation workflow instance
type State string

const (
	// StateIdle - no operation is being staged
	StateIdle State = "idle"

	// StateDrafting - the user is editing amount and destination
	StateDrafting State = "drafting"

	// StateAwaitingConfirmation - the draft passed validation and waits for
	// an explicit user confirmation
	StateAwaitingConfirmation State = "awaiting-confirmation"

	// StateSubmitting - the create call is in flight
	StateSubmitting State = "submitting"

	// StateSucceeded - terminal, the operation was committed
	StateSucceeded State = "succeeded"

	// StateFailed - terminal, the operation was rejected. The caller must
	// start over, no automatic retry happens
	StateFailed State = "failed"
)

// Submitter issues the create-transaction call. banking.API satisfies it
type Submitter interface {
	CreateTransaction(ctx context.Context, op *banking.OperationRequest) (*banking.Transaction, error)
}

type draft struct {
	source      banking.Account
	amount      decimal.Decimal
	destination string
}

// Operation is a staged deposit, withdrawal or transfer. One instance per
// operation kind per view, not safe for concurrent use
type Operation struct {
	id        string
	kind      banking.TransactionKind
	submitter Submitter
	onSuccess func(ctx context.Context) error

	state State
	draft draft
}

// OperationOpt is an option of an operation instance
type OperationOpt func(op *Operation)

// WithSubmitter sets the external transaction boundary
func WithSubmitter(submitter Submitter) OperationOpt {
	return func(op *Operation) {
		op.submitter = submitter
	}
}

// WithOnSuccess registers a hook ran exactly once after a committed submit.
// The host view uses it to re-trigger the account directory load
func WithOnSuccess(hook func(ctx context.Context) error) OperationOpt {
	return func(op *Operation) {
		op.onSuccess = hook
	}
}

// New returns an idle operation workflow of a given kind
func New(kind banking.TransactionKind, opts ...OperationOpt) *Operation {
	op := &Operation{
		id:    uuid.NewV4().String(),
		kind:  kind,
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(op)
	}
	return op
}

// ID of this workflow instance
func (op *Operation) ID() string {
	return op.id
}

// Kind of the staged operation
func (op *Operation) Kind() banking.TransactionKind {
	return op.kind
}

// State returns the current workflow state
func (op *Operation) State() State {
	return op.state
}

// Draft returns the staged source account, amount and destination
func (op *Operation) Draft() (banking.Account, decimal.Decimal, string) {
	return op.draft.source, op.draft.amount, op.draft.destination
}

// Start begins staging an operation against a given source account. The
// amount is reset to zero and, for transfers, the destination is cleared
func (op *Operation) Start(account banking.Account) error {
	switch op.state {
	case StateIdle, StateSucceeded, StateFailed:
	default:
		return errors.Errorf("Can not start %v operation from state: %v", op.kind, op.state)
	}
	op.draft = draft{source: account}
	op.state = StateDrafting
	return nil
}

// SetAmount edits the draft amount
func (op *Operation) SetAmount(amount decimal.Decimal) error {
	if op.state != StateDrafting {
		return errors.Errorf("Can not edit draft from state: %v", op.state)
	}
	op.draft.amount = amount
	return nil
}

// SetDestination edits the draft destination account number, transfers only
func (op *Operation) SetDestination(number string) error {
	if op.state != StateDrafting {
		return errors.Errorf("Can not edit draft from state: %v", op.state)
	}
	if op.kind != banking.KindTransfer {
		return errors.Errorf("Destination is not applicable to %v operation", op.kind)
	}
	op.draft.destination = number
	return nil
}

// ConfirmAmount validates the draft and advances to awaiting confirmation.
// On a validation failure the draft stays editable and a ValidationError is
// returned, no state change happens
func (op *Operation) ConfirmAmount() error {
	if op.state != StateDrafting {
		return errors.Errorf("Can not confirm amount from state: %v", op.state)
	}
	if err := op.validateDraft(); err != nil {
		return err
	}
	op.state = StateAwaitingConfirmation
	return nil
}

func (op *Operation) validateDraft() error {
	if !op.draft.amount.IsPositive() {
		return banking.NewValidationError("Amount must be positive")
	}
	switch op.kind {
	case banking.KindDeposit:
		return nil
	case banking.KindWithdrawal:
		if !CanWithdraw(op.draft.amount, op.draft.source) {
			return banking.NewValidationError("Insufficient balance")
		}
	case banking.KindTransfer:
		if op.draft.destination == "" {
			return banking.NewValidationError("Destination account is required")
		}
		if op.draft.destination == op.draft.source.Number {
			return banking.NewValidationError("Can not transfer to the same account")
		}
		if !CanWithdraw(op.draft.amount, op.draft.source) {
			return banking.NewValidationError("Insufficient balance")
		}
	}
	return nil
}

// Submit issues exactly one create-transaction call with the confirmed
// draft. Success and failure are both terminal, the draft is discarded
// either way
func (op *Operation) Submit(ctx context.Context) (*banking.Transaction, error) {
	if op.state != StateAwaitingConfirmation {
		return nil, errors.Errorf("Can not submit from state: %v", op.state)
	}
	op.state = StateSubmitting

	req := &banking.OperationRequest{
		Kind:                op.kind,
		Amount:              op.draft.amount,
		SourceAccountNumber: op.draft.source.Number,
	}
	if op.kind == banking.KindTransfer {
		req.DestinationAccountNumber = op.draft.destination
	}

	created, err := op.submitter.CreateTransaction(ctx, req)
	op.draft = draft{}
	if err != nil {
		op.state = StateFailed
		if !banking.IsSubmissionError(err) {
			err = banking.NewSubmissionError(err)
		}
		return nil, errors.Wrapf(err, "Failed to submit %v operation", op.kind)
	}
	op.state = StateSucceeded

	if op.onSuccess != nil {
		if err := op.onSuccess(ctx); err != nil {
			// The operation is committed at this point, a failed refresh
			// must not fail the submit
			logger.WithError(err).Warn(ctx, "Post-submit refresh failed, operation: %v", op.id)
		}
	}
	return created, nil
}

// Cancel discards the draft and returns to idle. Not valid once the
// submission is in flight
func (op *Operation) Cancel() error {
	switch op.state {
	case StateDrafting, StateAwaitingConfirmation:
		op.draft = draft{}
		op.state = StateIdle
		return nil
	default:
		return errors.Errorf("Can not cancel from state: %v", op.state)
	}
}
