package dal

import (
	"context"
	"database/sql"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/assert"
)

func newTestStorage(t *testing.T) Storage {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	storage, err := NewSQLStorage(WithSQLDb(db))
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.Setup(context.TODO()); err != nil {
		t.Fatal(err)
	}
	return storage
}

func Test_sqlStorage_Sessions(t *testing.T) {
	ctx := context.TODO()

	t.Run("no session stored", func(t *testing.T) {
		storage := newTestStorage(t)
		_, err := storage.GetSession(ctx)
		assert.Equal(t, ErrNoSession, err)
	})

	t.Run("save and get session", func(t *testing.T) {
		storage := newTestStorage(t)
		want := &SessionDTO{
			Username:    faker.Username(),
			AccessToken: "token-" + faker.UUIDDigit(),
		}
		if !assert.NoError(t, storage.SaveSession(ctx, want)) {
			return
		}
		got, err := storage.GetSession(ctx)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, want, got)
	})

	t.Run("save replaces prior session", func(t *testing.T) {
		storage := newTestStorage(t)
		first := &SessionDTO{Username: faker.Username(), AccessToken: faker.UUIDDigit()}
		second := &SessionDTO{Username: faker.Username(), AccessToken: faker.UUIDDigit()}
		if !assert.NoError(t, storage.SaveSession(ctx, first)) {
			return
		}
		if !assert.NoError(t, storage.SaveSession(ctx, second)) {
			return
		}
		got, err := storage.GetSession(ctx)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, second, got)
	})

	t.Run("clear session", func(t *testing.T) {
		storage := newTestStorage(t)
		session := &SessionDTO{Username: faker.Username(), AccessToken: faker.UUIDDigit()}
		if !assert.NoError(t, storage.SaveSession(ctx, session)) {
			return
		}
		if !assert.NoError(t, storage.ClearSession(ctx)) {
			return
		}
		_, err := storage.GetSession(ctx)
		assert.Equal(t, ErrNoSession, err)
	})
}
