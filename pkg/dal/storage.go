package dal

import "context"

// SessionDTO is a DTO to store a signed-in console session
type SessionDTO struct {
	Username    string
	AccessToken string
}

// Storage is a persistance layer
type Storage interface {
	Setup(ctx context.Context) error
	GetSession(ctx context.Context) (*SessionDTO, error)
	SaveSession(ctx context.Context, session *SessionDTO) error
	ClearSession(ctx context.Context) error
}
