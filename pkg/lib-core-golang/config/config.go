package config

import (
	"os"

	"github.com/pkg/errors"

	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

// AppEnv represents an environment the app is running in
type AppEnv struct {
	Name        string
	ServiceName string
}

// NewAppEnv creates an app env resolved from APP_ENV var, defaults to dev
func NewAppEnv(serviceName string) AppEnv {
	name := os.Getenv("APP_ENV")
	if name == "" {
		name = "dev"
	}
	return AppEnv{Name: name, ServiceName: serviceName}
}

// Param is a named config parameter
type Param struct {
	path string
}

// Path returns a slash separated path of this param within a config source
func (p Param) Path() string {
	return p.path
}

// Source provides raw values for given params
type Source interface {
	GetParameters(params []Param) (map[Param]interface{}, error)
}

// ServiceConfig holds loaded param values
type ServiceConfig interface {
	StringParam(p Param) StringVal
	IntParam(p Param) IntVal
}

type serviceConfig struct {
	values map[Param]paramValue
}

func (cfg *serviceConfig) StringParam(p Param) StringVal {
	val, ok := cfg.values[p].(StringVal)
	if !ok {
		panic("Not a string param: " + p.path)
	}
	return val
}

func (cfg *serviceConfig) IntParam(p Param) IntVal {
	val, ok := cfg.values[p].(IntVal)
	if !ok {
		panic("Not an int param: " + p.path)
	}
	return val
}

// Builder is a tool to setup config
type Builder struct {
	appEnv AppEnv
	params []Param
	source Source
}

// NewBuilder returns an instance of a config builder
func NewBuilder(appEnv AppEnv) *Builder {
	return &Builder{appEnv: appEnv}
}

// NewParam registers a new param with a given path
func (b *Builder) NewParam(path string) Param {
	p := Param{path: path}
	b.params = append(b.params, p)
	return p
}

// LoadOpt is a LoadConfig specific option
type LoadOpt func(b *Builder)

// WithSource will load params from an explicit source
func WithSource(source Source) LoadOpt {
	return func(b *Builder) {
		b.source = source
	}
}

// LoadConfig loads the config with sources and params built
func (b *Builder) LoadConfig(opts ...LoadOpt) (ServiceConfig, error) {
	for _, opt := range opts {
		opt(b)
	}
	source := b.source
	if source == nil {
		source = NewLocalSource(LocalOpts.WithAppEnv(b.appEnv))
	}

	rawValues, err := source.GetParameters(b.params)
	if err != nil {
		logger.WithError(err).Error(nil, "Failed to load config")
		return nil, errors.Wrap(err, "Failed to get parameters from source")
	}

	values := make(map[Param]paramValue, len(b.params))
	for _, p := range b.params {
		raw, ok := rawValues[p]
		if !ok {
			return nil, errors.Errorf("Missing config param: %v", p.path)
		}
		val, err := newParamValue(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "Bad value of config param: %v", p.path)
		}
		values[p] = val
	}
	return &serviceConfig{values: values}, nil
}
