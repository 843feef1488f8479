package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/awaitkit/wait-for/pkg/util"
	"github.com/awaitkit/wait-for/pkg/wait"
)

// Defaults is the environment-driven configuration applied to wait
// requests assembled through this package.
type Defaults struct {
	// Timeout is the deadline for requests built from these defaults.
	Timeout time.Duration `envconfig:"WAIT_FOR_TIMEOUT" default:"5s"`
	// PollInterval is the cadence between predicate evaluations.
	PollInterval time.Duration `envconfig:"WAIT_FOR_POLL_INTERVAL" default:"10ms"`
}

// Parse reads Defaults from the environment and validates them.
func Parse() (*Defaults, error) {
	ret := new(Defaults)
	if err := envconfig.Process("", ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// MustParse is Parse for program start-up paths.
func MustParse() *Defaults {
	ret := new(Defaults)
	envconfig.MustProcess("", ret)
	if err := ret.Validate(); err != nil {
		panic(err)
	}
	return ret
}

// Validate applies the same fail-fast rule as wait.NewRequest: a
// non-positive poll interval is a configuration error, caught before
// any polling begins.
func (d *Defaults) Validate() error {
	if d.PollInterval <= 0 {
		return fmt.Errorf("%w, got %v", wait.ErrNonPositiveInterval, d.PollInterval)
	}
	return nil
}

// ApplyOverrides layers caller-named environment variables on top of
// the parsed defaults, for deployments whose variable names are not
// the WAIT_FOR_* ones. Unset variables leave the defaults alone. An
// empty name skips that override.
func (d *Defaults) ApplyOverrides(timeoutEnv, pollIntervalEnv string) error {
	if timeoutEnv != "" {
		v, err := util.ResolveOsEnvDuration(timeoutEnv)
		if err != nil {
			return err
		}
		if v != nil {
			d.Timeout = *v
		}
	}
	if pollIntervalEnv != "" {
		v, err := util.ResolveOsEnvDuration(pollIntervalEnv)
		if err != nil {
			return err
		}
		if v != nil {
			d.PollInterval = *v
		}
	}
	return d.Validate()
}

// NewRequest assembles a wait.Request carrying the configured timeout
// and poll interval.
func NewRequest[T any](d *Defaults, description string, pred wait.Predicate[T]) (wait.Request[T], error) {
	return wait.NewRequest(description, d.Timeout, pred, wait.WithPollInterval(d.PollInterval))
}
