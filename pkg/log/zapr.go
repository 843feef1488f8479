package log

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// NewZapr builds a production logr.Logger, sampled so that a tight
// poll loop cannot flood the output. Pass it to
// wait.NewLogrObserver for opt-in wait visibility.
func NewZapr() (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = &zap.SamplingConfig{
		Initial:    1,
		Thereafter: 5,
	}
	zapLggr, err := zapCfg.Build()
	if err != nil {
		return logr.Logger{}, err
	}
	return zapr.NewLogger(zapLggr), nil
}

// NewZaprDevelopment builds a human-readable logger for tests and
// local runs. Unsampled, so every poll attempt shows up.
func NewZaprDevelopment() (logr.Logger, error) {
	zapLggr, err := zap.NewDevelopment()
	if err != nil {
		return logr.Logger{}, err
	}
	return zapr.NewLogger(zapLggr), nil
}
