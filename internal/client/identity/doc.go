// Package identity defines the boundary to the hosted identity provider:
// the Session handle, the Backend interface the rest of the client programs
// against, and the provider-agnostic error taxonomy auth failures are
// classified into. Callers match errors with errors.Is; unrecognized
// provider failures surface as *UnknownError.
package identity
