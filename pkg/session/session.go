package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/ayawo/ega.banking-console/pkg/banking"
	"github.com/ayawo/ega.banking-console/pkg/dal"
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
	"github.com/ayawo/ega.banking-console/pkg/types"
)

var logger = diag.CreateLogger()

// Tokens expiring within this margin are treated as already expired
const expiryMargin = 15 * time.Second

// NowService provides current time, swap for a mock in tests
type NowService interface {
	Now() time.Time
}

type realNowService struct{}

func (realNowService) Now() time.Time { return time.Now() }

// Service holds the signed-in identity. Components needing identity get it
// from here instead of ambient global state
type Service interface {
	Login(ctx context.Context, username string, password string) (*banking.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*banking.User, error)

	// Ready is closed once the identity is known. Callers that must wait for
	// identity block on this instead of polling with timed delays
	Ready() <-chan struct{}
}

type service struct {
	api     banking.API
	storage dal.Storage
	nowSvc  NowService

	mu    sync.Mutex
	user  *banking.User
	ready chan struct{}
}

func (svc *service) Login(ctx context.Context, username string, password string) (*banking.User, error) {
	logger.Debug(ctx, "Submitting credentials of user: %v", username)
	token, err := svc.api.Login(ctx, username, password)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to login")
	}
	if err := svc.storage.SaveSession(ctx, &dal.SessionDTO{
		Username:    username,
		AccessToken: token.Value(),
	}); err != nil {
		return nil, errors.Wrap(err, "Failed to save session")
	}
	user, err := svc.api.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch user after login")
	}
	svc.setUser(user)
	return user, nil
}

func (svc *service) Logout(ctx context.Context) error {
	svc.mu.Lock()
	svc.user = nil
	svc.mu.Unlock()
	return svc.storage.ClearSession(ctx)
}

func (svc *service) CurrentUser(ctx context.Context) (*banking.User, error) {
	svc.mu.Lock()
	cached := svc.user
	svc.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	session, err := svc.storage.GetSession(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get stored session")
	}
	claims, err := types.AccessToken(session.AccessToken).ExtractClaims()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to extract token claims")
	}
	if time.Unix(claims.Expires, 0).Add(-expiryMargin).Before(svc.nowSvc.Now()) {
		return nil, errors.New("Session expired. Please login again")
	}

	logger.Debug(ctx, "Resolving identity of user: %v", session.Username)
	user, err := svc.api.GetUserByUsername(ctx, session.Username)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to resolve current user")
	}
	svc.setUser(user)
	return user, nil
}

func (svc *service) setUser(user *banking.User) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.user = user
	select {
	case <-svc.ready:
	default:
		close(svc.ready)
	}
}

func (svc *service) Ready() <-chan struct{} {
	return svc.ready
}

// ServiceOpt is an option for session service
type ServiceOpt func(*service)

// WithAPI will init the service with banking API
func WithAPI(api banking.API) ServiceOpt {
	return func(svc *service) {
		svc.api = api
	}
}

// WithStorage will init the service with storage
func WithStorage(storage dal.Storage) ServiceOpt {
	return func(svc *service) {
		svc.storage = storage
	}
}

// WithNowService will init the service with an explicit time source
func WithNowService(nowSvc NowService) ServiceOpt {
	return func(svc *service) {
		svc.nowSvc = nowSvc
	}
}

// NewService returns an instance of a session service
func NewService(opts ...ServiceOpt) Service {
	svc := &service{
		nowSvc: realNowService{},
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}
