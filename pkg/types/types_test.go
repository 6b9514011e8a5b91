package types

import (
	"testing"

	"github.com/bxcodec/faker/v3"
	tst "github.com/ayawo/ega.banking-console/pkg/internal/testing"
	"github.com/stretchr/testify/assert"
)

func Test_AccessToken_ExtractClaims(t *testing.T) {
	type testCase struct {
		name  string
		token AccessToken
		want  *AccessTokenClaims
	}

	tests := []func() testCase{
		func() testCase {
			username := faker.Username()
			clientID := int64(faker.RandomUnixTime() % 10000)
			expires := faker.UnixTime()
			payload := map[string]interface{}{
				"sub":      username,
				"role":     "CLIENT",
				"clientId": clientID,
				"exp":      expires,
			}

			tokenString, err := tst.EncodeUnsignedJWT(t, payload)
			if err != nil {
				panic(err)
			}

			return testCase{
				name:  "correct jwt token",
				token: AccessToken(tokenString),
				want: &AccessTokenClaims{
					Username: username,
					Role:     "CLIENT",
					ClientID: clientID,
					Expires:  expires,
				},
			}
		},
		func() testCase {
			adminPayload := map[string]interface{}{
				"sub":  "admin-" + faker.Word(),
				"role": "ADMIN",
				"exp":  faker.UnixTime(),
			}
			tokenString, err := tst.EncodeUnsignedJWT(t, adminPayload)
			if err != nil {
				panic(err)
			}
			return testCase{
				name:  "admin token without clientId",
				token: AccessToken(tokenString),
				want: &AccessTokenClaims{
					Username: adminPayload["sub"].(string),
					Role:     "ADMIN",
					Expires:  adminPayload["exp"].(int64),
				},
			}
		},
	}
	for _, tt := range tests {
		tt := tt()
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.token.ExtractClaims()
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_AccessToken_ExtractClaims_BadToken(t *testing.T) {
	_, err := AccessToken("not-a-jwt").ExtractClaims()
	assert.Error(t, err)
}
