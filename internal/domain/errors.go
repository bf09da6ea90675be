// Package domain defines core types and errors for the mart explorer.
package domain

import "fmt"

// ConfigError indicates missing or inconsistent configuration.
// Fatal at startup; never recovered.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// ConnectionError indicates the database is unreachable.
// Fatal at startup; no retries.
type ConnectionError struct {
	Message string
}

func (e *ConnectionError) Error() string { return e.Message }

// QueryError indicates a malformed or failing query. Recovered at the
// call boundary and shown to the user; the process continues.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string { return e.Message }

// ErrConfig creates a ConfigError with a formatted message.
func ErrConfig(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// ErrConnection creates a ConnectionError with a formatted message.
func ErrConnection(format string, args ...interface{}) *ConnectionError {
	return &ConnectionError{Message: fmt.Sprintf(format, args...)}
}

// ErrQuery creates a QueryError with a formatted message.
func ErrQuery(format string, args ...interface{}) *QueryError {
	return &QueryError{Message: fmt.Sprintf(format, args...)}
}
