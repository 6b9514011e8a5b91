package banking

import (
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_ErrorTaxonomy(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		reason := faker.Sentence()
		err := NewValidationError(reason)
		assert.True(t, IsValidationError(err))
		assert.False(t, IsFetchError(err))
		assert.False(t, IsSubmissionError(err))
		assert.Contains(t, err.Error(), reason)
	})

	t.Run("wrapped errors keep their class", func(t *testing.T) {
		cause := NewFetchError(errors.New(faker.Sentence()))
		wrapped := errors.Wrap(cause, "Failed to load accounts")
		assert.True(t, IsFetchError(wrapped))
		assert.False(t, IsSubmissionError(wrapped))
	})

	t.Run("submission error wrapping a cause", func(t *testing.T) {
		cause := errors.New(faker.Sentence())
		err := NewSubmissionError(cause)
		assert.True(t, IsSubmissionError(err))
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("plain error belongs to no class", func(t *testing.T) {
		err := errors.New(faker.Sentence())
		assert.False(t, IsValidationError(err))
		assert.False(t, IsFetchError(err))
		assert.False(t, IsSubmissionError(err))
	})
}
