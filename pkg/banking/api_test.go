package banking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gopkg.in/h2non/gock.v1"

	tst "github.com/ayawo/ega.banking-console/pkg/internal/testing"
	"github.com/ayawo/ega.banking-console/pkg/types"
)

type staticTokens types.AccessToken

func (t staticTokens) AccessToken(ctx context.Context) (types.AccessToken, error) {
	return types.AccessToken(t), nil
}

func newTestAPI(baseURL string, token string) API {
	return NewAPI(baseURL, WithTokenSource(staticTokens(token)))
}

func Test_API_Login(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"
	username := faker.Username()
	password := faker.Password()
	wantToken := "jwt-" + faker.UUIDDigit()

	gock.New(baseURL).
		Post("/auth/login").
		JSON(map[string]string{"username": username, "password": password}).
		Reply(200).
		JSON(map[string]interface{}{"token": wantToken, "type": "Bearer"})

	a := newTestAPI(baseURL, "")
	token, err := a.Login(context.TODO(), username, password)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, types.AccessToken(wantToken), token)
	assert.True(t, gock.IsDone())
}

func Test_API_Login_BadCredentials(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"

	gock.New(baseURL).
		Post("/auth/login").
		Reply(401)

	a := newTestAPI(baseURL, "")
	_, err := a.Login(context.TODO(), faker.Username(), faker.Password())
	assert.Error(t, err)
}

func Test_API_GetUserByUsername(t *testing.T) {
	defer gock.Off()
	type testCase struct {
		name string
		run  func(t *testing.T)
	}

	tests := []func() testCase{
		func() testCase {
			return testCase{
				name: "single user object",
				run: func(t *testing.T) {
					baseURL := "https://bank-" + faker.Word() + ".com"
					token := "tkn-" + faker.Word()
					want := &User{
						ID:       42,
						Username: faker.Username(),
						Role:     RoleClient,
						ClientID: 11,
					}
					gock.New(baseURL).
						Get("/user/username/" + want.Username).
						MatchHeader("Authorization", "Bearer "+token).
						Reply(200).
						JSON(want)

					got, err := newTestAPI(baseURL, token).GetUserByUsername(context.TODO(), want.Username)
					if !assert.NoError(t, err) {
						return
					}
					assert.Equal(t, want, got)
				},
			}
		},
		func() testCase {
			return testCase{
				name: "single element array",
				run: func(t *testing.T) {
					baseURL := "https://bank-" + faker.Word() + ".com"
					want := &User{Username: faker.Username(), Role: RoleAdmin}
					gock.New(baseURL).
						Get("/user/username/" + want.Username).
						Reply(200).
						JSON([]*User{want})

					got, err := newTestAPI(baseURL, "t").GetUserByUsername(context.TODO(), want.Username)
					if !assert.NoError(t, err) {
						return
					}
					assert.Equal(t, want, got)
				},
			}
		},
		func() testCase {
			return testCase{
				name: "empty array is a fetch error",
				run: func(t *testing.T) {
					baseURL := "https://bank-" + faker.Word() + ".com"
					username := faker.Username()
					gock.New(baseURL).
						Get("/user/username/" + username).
						Reply(200).
						JSON([]User{})

					_, err := newTestAPI(baseURL, "t").GetUserByUsername(context.TODO(), username)
					if !assert.Error(t, err) {
						return
					}
					assert.True(t, IsFetchError(err))
				},
			}
		},
	}
	for _, tt := range tests {
		tt := tt()
		t.Run(tt.name, tt.run)
	}
}

func Test_API_ListAllAccounts(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"
	token := "tkn-" + faker.Word()
	want := []Account{
		{Number: "AC-" + faker.Word(), OwnerName: faker.Name(), Type: AccountTypeCurrent, Balance: decimal.NewFromFloat(120.55)},
		{Number: "AC-" + faker.Word(), OwnerName: faker.Name(), Type: AccountTypeSavings, Balance: decimal.NewFromInt(-10)},
	}
	body, ok := tst.JSONMarshalToReader(t, want)
	if !ok {
		return
	}
	gock.New(baseURL).
		Get("/compte/summary").
		MatchHeader("Authorization", "Bearer "+token).
		Reply(200).
		Body(body)

	got, err := newTestAPI(baseURL, token).ListAllAccounts(context.TODO())
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assert.Equal(t, want[i].Number, got[i].Number)
		assert.True(t, want[i].Balance.Equal(got[i].Balance))
	}
	assert.True(t, gock.IsDone())
}

func Test_API_ListClientAccounts_Failure(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"
	clientID := int64(77)

	gock.New(baseURL).
		Get(fmt.Sprintf("/compte/client/%v", clientID)).
		Reply(503)

	_, err := newTestAPI(baseURL, "t").ListClientAccounts(context.TODO(), clientID)
	if !assert.Error(t, err) {
		return
	}
	assert.True(t, IsFetchError(err))
}

func Test_API_ListClientTransactions(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"
	clientID := int64(12)

	gock.New(baseURL).
		Get(fmt.Sprintf("/transaction/client/%v", clientID)).
		Reply(200).
		BodyString(`[
			{"id": 1, "type": "DEPOT", "montant": 50.25, "numeroCompteSource": "AC1", "date": "2024-03-10T14:22:05"},
			{"id": 2, "type": "VIREMENT", "montant": 10, "numeroCompteSource": "AC1", "numeroCompteDestination": "AC2", "date": "2024-04-01T09:00:00"}
		]`)

	got, err := newTestAPI(baseURL, "t").ListClientTransactions(context.TODO(), clientID)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, got, 2) {
		return
	}
	assert.Equal(t, KindDeposit, got[0].Kind)
	assert.True(t, decimal.NewFromFloat(50.25).Equal(got[0].Amount))
	assert.Equal(t, time.March, got[0].Date.Month())
	assert.Equal(t, KindTransfer, got[1].Kind)
	assert.Equal(t, "AC2", got[1].DestinationAccountNumber)
}

func Test_API_CreateTransaction(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"
	token := "tkn-" + faker.Word()
	op := &OperationRequest{
		Kind:                KindDeposit,
		Amount:              decimal.NewFromInt(50),
		SourceAccountNumber: "AC-" + faker.Word(),
	}

	gock.New(baseURL).
		Post("/transaction").
		MatchHeader("Authorization", "Bearer "+token).
		Reply(201).
		BodyString(fmt.Sprintf(
			`{"id": 101, "type": "DEPOT", "montant": 50, "numeroCompteSource": %q, "date": "2024-01-02T10:00:00"}`,
			op.SourceAccountNumber))

	created, err := newTestAPI(baseURL, token).CreateTransaction(context.TODO(), op)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, int64(101), created.ID)
	assert.Equal(t, op.SourceAccountNumber, created.SourceAccountNumber)
	assert.True(t, gock.IsDone())
}

func Test_API_CreateTransaction_Rejected(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"

	gock.New(baseURL).
		Post("/transaction").
		Reply(400).
		BodyString("Solde insuffisant")

	_, err := newTestAPI(baseURL, "t").CreateTransaction(context.TODO(), &OperationRequest{
		Kind:                KindWithdrawal,
		Amount:              decimal.NewFromInt(1000),
		SourceAccountNumber: "AC1",
	})
	if !assert.Error(t, err) {
		return
	}
	assert.True(t, IsSubmissionError(err))
	assert.False(t, IsValidationError(err))
}

func Test_API_CreateAccount(t *testing.T) {
	defer gock.Off()
	baseURL := "https://bank-" + faker.Word() + ".com"
	newAccount := &NewAccountRequest{
		ClientID:       5,
		Type:           AccountTypeSavings,
		InitialBalance: decimal.NewFromInt(100),
	}

	gock.New(baseURL).
		Post("/compte").
		Reply(201).
		BodyString(`{"numeroCompte": "AC-NEW", "typeCompte": "EPARGNE", "solde": 100}`)

	created, err := newTestAPI(baseURL, "t").CreateAccount(context.TODO(), newAccount)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "AC-NEW", created.Number)
	assert.Equal(t, AccountTypeSavings, created.Type)
}
