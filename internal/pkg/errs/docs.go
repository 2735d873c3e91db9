// Package errs holds the typed errors shared by the domain, application and adapter layers.
//
// Every type wraps one sentinel (ErrObjectNotFound, ErrForbidden, ...) so callers match with
// errors.Is and the HTTP adapter can pick a status code without knowing the concrete type.
// User supplied values are flattened to a single line before they reach Error().
package errs
