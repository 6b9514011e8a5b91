package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"
	"strings"
)

type localSource struct {
	dir    string
	appEnv AppEnv
}

func (s *localSource) GetParameters(params []Param) (map[Param]interface{}, error) {
	values := map[Param]interface{}{}

	pick := func(obj interface{}, paramPath string) interface{} {
		parts := strings.Split(paramPath, "/")
		paramVal := obj
		for _, part := range parts {
			var ok bool
			if paramVal, ok = paramVal.(map[string]interface{})[part]; !ok {
				return nil
			}
		}
		return paramVal
	}

	for _, file := range []string{"default.json", s.appEnv.Name + ".json"} {
		buffer, err := ioutil.ReadFile(path.Join(s.dir, file))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var obj interface{}
		if err := json.Unmarshal(buffer, &obj); err != nil {
			return nil, err
		}
		for _, p := range params {
			if val := pick(obj, p.path); val != nil {
				values[p] = val
			}
		}
	}

	// Env vars take precedence over config files
	for _, p := range params {
		envKey := envOverrideKey(s.appEnv.ServiceName, p.path)
		if envVal, ok := os.LookupEnv(envKey); ok {
			values[p] = envVal
		}
	}

	return values, nil
}

func envOverrideKey(serviceName string, paramPath string) string {
	key := serviceName + "_" + paramPath
	key = strings.NewReplacer("/", "_", "-", "_").Replace(key)
	return strings.ToUpper(key)
}

type localSourceOpt func(s *localSource)

type localOpts struct{}

// LocalOpts is a set of options of a local source
var LocalOpts localOpts

// WithAppEnv binds the source to a given app env
func (localOpts) WithAppEnv(appEnv AppEnv) localSourceOpt {
	return func(s *localSource) {
		s.appEnv = appEnv
	}
}

// WithDir sets a dir to read config files from
func (localOpts) WithDir(dir string) localSourceOpt {
	return func(s *localSource) {
		s.dir = dir
	}
}

// NewLocalSource creates a source that is reading params
// from json files in a configs dir
func NewLocalSource(opts ...localSourceOpt) Source {
	source := &localSource{dir: "configs"}
	for _, opt := range opts {
		opt(source)
	}
	return source
}
