package banking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/request"
	"github.com/ayawo/ega.banking-console/pkg/types"
)

var logger = diag.CreateLogger()

// API is an interface to communicate with the banking service
type API interface {
	Login(ctx context.Context, username string, password string) (types.AccessToken, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListAllAccounts(ctx context.Context) ([]Account, error)
	ListClientAccounts(ctx context.Context, clientID int64) ([]Account, error)
	ListClientTransactions(ctx context.Context, clientID int64) ([]Transaction, error)
	CreateTransaction(ctx context.Context, op *OperationRequest) (*Transaction, error)
	CreateAccount(ctx context.Context, newAccount *NewAccountRequest) (*Account, error)
}

// TokenSource provides a bearer credential for authenticated calls.
// Credential acquisition and expiry handling belong to the session layer
type TokenSource interface {
	AccessToken(ctx context.Context) (types.AccessToken, error)
}

type api struct {
	baseURL string
	tokens  TokenSource
}

func (a *api) authorizedGet(ctx context.Context, path string) (request.ResFactory, error) {
	token, err := a.tokens.AccessToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get access token")
	}
	req := request.Get(a.baseURL + path).
		WithHeader("Authorization", "Bearer "+token.Value())
	return request.Do(ctx, req), nil
}

func (a *api) authorizedPost(ctx context.Context, path string, payload interface{}) (request.ResFactory, error) {
	token, err := a.tokens.AccessToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get access token")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req := request.Post(a.baseURL+path, "application/json", bytes.NewReader(body)).
		WithHeader("Authorization", "Bearer "+token.Value())
	return request.Do(ctx, req), nil
}

func (a *api) Login(ctx context.Context, username string, password string) (types.AccessToken, error) {
	logger.Debug(ctx, "Logging in user: %v", username)
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	res := request.Do(ctx, request.Post(a.baseURL+"/auth/login", "application/json", bytes.NewReader(payload)))
	var authData struct {
		Token string `json:"token"`
	}
	if err := res.DecodeJSON(&authData); err != nil {
		return "", errors.Wrap(err, "Failed to login")
	}
	if authData.Token == "" {
		return "", errors.New("Login response has no token")
	}
	return types.AccessToken(authData.Token), nil
}

func (a *api) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	logger.Debug(ctx, "Fetching user: %v", username)
	res, err := a.authorizedGet(ctx, "/user/username/"+username)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := res.DecodeJSON(&raw); err != nil {
		return nil, NewFetchError(errors.Wrap(err, "Failed to fetch user"))
	}

	// The service is known to occasionally reply with a single element array
	if len(raw) > 0 && raw[0] == '[' {
		var users []User
		if err := json.Unmarshal(raw, &users); err != nil {
			return nil, NewFetchError(errors.Wrap(err, "Failed to decode user"))
		}
		if len(users) == 0 {
			return nil, NewFetchError(errors.Errorf("Unknown user: %v", username))
		}
		return &users[0], nil
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, NewFetchError(errors.Wrap(err, "Failed to decode user"))
	}
	return &user, nil
}

func (a *api) ListAllAccounts(ctx context.Context) ([]Account, error) {
	res, err := a.authorizedGet(ctx, "/compte/summary")
	if err != nil {
		return nil, err
	}
	var accounts []Account
	if err := res.DecodeJSON(&accounts); err != nil {
		return nil, NewFetchError(errors.Wrap(err, "Failed to fetch accounts summary"))
	}
	return accounts, nil
}

func (a *api) ListClientAccounts(ctx context.Context, clientID int64) ([]Account, error) {
	res, err := a.authorizedGet(ctx, fmt.Sprintf("/compte/client/%v", clientID))
	if err != nil {
		return nil, err
	}
	var accounts []Account
	if err := res.DecodeJSON(&accounts); err != nil {
		return nil, NewFetchError(errors.Wrapf(err, "Failed to fetch accounts of client: %v", clientID))
	}
	return accounts, nil
}

func (a *api) ListClientTransactions(ctx context.Context, clientID int64) ([]Transaction, error) {
	res, err := a.authorizedGet(ctx, fmt.Sprintf("/transaction/client/%v", clientID))
	if err != nil {
		return nil, err
	}
	var transactions []Transaction
	if err := res.DecodeJSON(&transactions); err != nil {
		return nil, NewFetchError(errors.Wrapf(err, "Failed to fetch transactions of client: %v", clientID))
	}
	return transactions, nil
}

func (a *api) CreateTransaction(ctx context.Context, op *OperationRequest) (*Transaction, error) {
	logger.Info(ctx, "Submitting %v operation, account: %v", op.Kind, op.SourceAccountNumber)
	res, err := a.authorizedPost(ctx, "/transaction", op)
	if err != nil {
		return nil, NewSubmissionError(err)
	}
	var created Transaction
	if err := res.DecodeJSON(&created); err != nil {
		return nil, NewSubmissionError(errors.Wrap(err, "Transaction rejected"))
	}
	return &created, nil
}

func (a *api) CreateAccount(ctx context.Context, newAccount *NewAccountRequest) (*Account, error) {
	logger.Info(ctx, "Creating %v account for client: %v", newAccount.Type, newAccount.ClientID)
	res, err := a.authorizedPost(ctx, "/compte", newAccount)
	if err != nil {
		return nil, NewSubmissionError(err)
	}
	var created Account
	if err := res.DecodeJSON(&created); err != nil {
		return nil, NewSubmissionError(errors.Wrap(err, "Account creation rejected"))
	}
	return &created, nil
}

// APIOpt is an option of an api instance
type APIOpt func(a *api)

// WithTokenSource will set a token source for authenticated calls
func WithTokenSource(tokens TokenSource) APIOpt {
	return func(a *api) {
		a.tokens = tokens
	}
}

// NewAPI returns an instance of an API bound to a given base url
func NewAPI(baseURL string, opts ...APIOpt) API {
	a := &api{baseURL: baseURL}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
