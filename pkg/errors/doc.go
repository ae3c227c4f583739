// Package errors provides structured error types for better observability
// and programmatic error handling across the telemetry subsystem.
//
// Errors here never cross into the hosting application: the session layer
// converts every failure into a logged message and a degraded field. The
// structured form exists so those log lines carry a stable code and
// context.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to submit telemetry session",
//	    cause,
//	    map[string]any{
//	        "endpoint": endpoint,
//	        "fields":   count,
//	    },
//	)
package errors
