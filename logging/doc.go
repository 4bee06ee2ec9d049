// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug
// any structured logger. The MDL core stays silent; only the collaborator
// layers (agent loop, stores, CLI) log.
package logging
