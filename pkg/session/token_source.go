package session

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/dal"
	"github.com/ayawo/ega.banking-console/pkg/types"
)

type storedTokenSource struct {
	storage dal.Storage
	nowSvc  NowService
}

func (s *storedTokenSource) AccessToken(ctx context.Context) (types.AccessToken, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		return "", errors.Wrap(err, "Failed to get stored session")
	}
	token := types.AccessToken(session.AccessToken)
	claims, err := token.ExtractClaims()
	if err != nil {
		return "", errors.Wrap(err, "Failed to extract token claims")
	}
	if time.Unix(claims.Expires, 0).Add(-expiryMargin).Before(s.nowSvc.Now()) {
		return "", errors.New("Access token expired. Please login again")
	}
	return token, nil
}

// TokenSourceOpt is an option of a stored token source
type TokenSourceOpt func(s *storedTokenSource)

// WithTokenNowService sets an explicit time source
func WithTokenNowService(nowSvc NowService) TokenSourceOpt {
	return func(s *storedTokenSource) {
		s.nowSvc = nowSvc
	}
}

// NewStoredTokenSource returns a token source reading the bearer credential
// from the local session storage
func NewStoredTokenSource(storage dal.Storage, opts ...TokenSourceOpt) banking.TokenSource {
	source := &storedTokenSource{storage: storage, nowSvc: realNowService{}}
	for _, opt := range opts {
		opt(source)
	}
	return source
}
