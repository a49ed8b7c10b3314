// Package errors provides the coded error type used across statblock-api.
//
// Every layer returns *Error values so the code survives wrapping and can be
// mapped onto a gRPC status at the handler boundary:
//   - Structured errors with codes, messages, and metadata
//   - gRPC conversion in both directions, metadata carried as structpb details
//   - Validation helpers for Config and Input structs
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("parse result not found")
//	err := errors.InvalidArgumentf("unknown field: %s", field)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("stat block text is empty").
//	    WithMeta("reason", "empty_input")
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save parse result")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("text", input.Text, vb)
//	errors.ValidateRange("fuzzy_window", cfg.FuzzyWindow, 1, 200, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing keys, wrap client errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository and parser errors with business context
//
// Handler layer:
//   - Convert errors with ToGRPCError
package errors
