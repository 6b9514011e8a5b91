package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// AccessToken is a jwt encoded bearer token string issued by the banking service
type AccessToken string

// Value is an underlying string
func (t AccessToken) Value() string {
	return string(t)
}

// AccessTokenClaims represents claims encoded into an access token
type AccessTokenClaims struct {
	Username string `json:"sub"`
	Role     string `json:"role"`
	ClientID int64  `json:"clientId"`
	Expires  int64  `json:"exp"`
}

// ExtractClaims will decode an access token and get its claims
func (t AccessToken) ExtractClaims() (*AccessTokenClaims, error) {
	parts := strings.Split(t.Value(), ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("Unexpected access token structure. Should have 3 segments, got: %v", len(parts))
	}
	decoder := json.NewDecoder(base64.NewDecoder(base64.RawURLEncoding, strings.NewReader(parts[1])))
	var claims AccessTokenClaims
	if err := decoder.Decode(&claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
