// Package errors provides the error types shared by the fluentkit packages.
//
// # Error Types
//
//   - ValidationError: a rejected builder input, naming the field and the rule
//   - ValidationErrors: several validation errors reported together
//
// Every error type implements the FluentError interface, which exposes a
// machine-readable code:
//
//	var fe errors.FluentError
//	if stdErrors.As(err, &fe) {
//	    log.Printf("error code: %s", fe.Code())
//	}
//
// # Sentinel Errors
//
//   - ErrUnknownDemo: the demo runner was asked for a demo it does not know
//   - ErrInvalidConfig: a configuration file or override could not be applied
//   - ErrUnsupportedConfigFormat: a configuration file has an unknown extension
//
// Use errors.Is() for sentinel comparison:
//
//	if stdErrors.Is(err, errors.ErrUnknownDemo) {
//	    // print the demo list
//	}
package errors
