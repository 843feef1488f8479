package util

import (
	"os"
	"time"
)

// ResolveOsEnvDuration returns the parsed value of the environment
// variable called envName, or nil if it is unset or empty. Callers use
// the nil return to fall back to their own default.
func ResolveOsEnvDuration(envName string) (*time.Duration, error) {
	valueStr, found := os.LookupEnv(envName)

	if found && valueStr != "" {
		value, err := time.ParseDuration(valueStr)
		return &value, err
	}

	return nil, nil
}
