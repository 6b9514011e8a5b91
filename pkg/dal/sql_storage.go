package dal

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"

	// This has to be here to let go mods work
	_ "github.com/mattn/go-sqlite3"
)

var logger = diag.CreateLogger()

// ErrNoSession is returned when no session has been stored yet
var ErrNoSession = errors.New("No stored session. Please login first")

type sqlStorage struct {
	db *sql.DB
}

func (s *sqlStorage) Setup(ctx context.Context) error {
	logger.Info(ctx, "Setup SQL storage")
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS sessions(
	id           INTEGER NOT NULL PRIMARY KEY CHECK (id = 1),
	username     nvarchar(255) NOT NULL,
	access_token NTEXT NOT NULL,
	updated_at   timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	return errors.Wrap(err, "Failed to setup storage")
}

func (s *sqlStorage) GetSession(ctx context.Context) (*SessionDTO, error) {
	res, err := s.db.QueryContext(ctx, `
	SELECT username, access_token FROM sessions WHERE id = 1`)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if !res.Next() {
		if res.Err() != nil {
			return nil, res.Err()
		}
		return nil, ErrNoSession
	}

	result := &SessionDTO{}
	if err := res.Scan(&result.Username, &result.AccessToken); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqlStorage) SaveSession(ctx context.Context, session *SessionDTO) error {
	if _, err := s.db.ExecContext(ctx, `
	INSERT INTO sessions(id, username, access_token)
	VALUES(1, $1, $2)
	ON CONFLICT(id) DO UPDATE
	SET username=$1, access_token=$2, updated_at=CURRENT_TIMESTAMP
	`, session.Username, session.AccessToken); err != nil {
		return err
	}
	return nil
}

func (s *sqlStorage) ClearSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`)
	return err
}

// SQLStorageOpt is an option of SQL storage
type SQLStorageOpt func(s *sqlStorage)

// WithSQLDb will set an explicit db instance for a storage
func WithSQLDb(db *sql.DB) SQLStorageOpt {
	return func(s *sqlStorage) {
		s.db = db
	}
}

// NewSQLStorage returns an instance of a local storage
func NewSQLStorage(opts ...SQLStorageOpt) (Storage, error) {
	storage := &sqlStorage{}
	for _, opt := range opts {
		opt(storage)
	}
	return storage, nil
}
