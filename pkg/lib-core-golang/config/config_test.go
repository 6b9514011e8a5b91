package config

import (
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/assert"
)

type mockSource struct {
	values map[string]interface{}
	err    error
}

func (s *mockSource) GetParameters(params []Param) (map[Param]interface{}, error) {
	if s.err != nil {
		return nil, s.err
	}
	values := map[Param]interface{}{}
	for _, p := range params {
		if val, ok := s.values[p.Path()]; ok {
			values[p] = val
		}
	}
	return values, nil
}

func Test_Builder_LoadConfig(t *testing.T) {
	appEnv := NewAppEnv("svc-" + faker.Word())

	t.Run("loads registered params", func(t *testing.T) {
		b := NewBuilder(appEnv)
		strParam := b.NewParam("some/string")
		intParam := b.NewParam("some/int")

		wantStr := faker.Sentence()
		wantInt := 42

		cfg, err := b.LoadConfig(WithSource(&mockSource{values: map[string]interface{}{
			"some/string": wantStr,
			"some/int":    wantInt,
		}}))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, wantStr, cfg.StringParam(strParam).Value())
		assert.Equal(t, wantInt, cfg.IntParam(intParam).Value())
	})

	t.Run("fails on missing param", func(t *testing.T) {
		b := NewBuilder(appEnv)
		b.NewParam("not/defined")
		_, err := b.LoadConfig(WithSource(&mockSource{values: map[string]interface{}{}}))
		assert.Error(t, err)
	})

	t.Run("json numbers map to int params", func(t *testing.T) {
		b := NewBuilder(appEnv)
		intParam := b.NewParam("some/int")
		cfg, err := b.LoadConfig(WithSource(&mockSource{values: map[string]interface{}{
			"some/int": float64(7),
		}}))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 7, cfg.IntParam(intParam).Value())
	})
}

func Test_envOverrideKey(t *testing.T) {
	assert.Equal(t, "BANKING_CONSOLE_LOG_LOGLEVEL", envOverrideKey("banking-console", "log/logLevel"))
}
