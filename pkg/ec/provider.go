package ec

// AccessProvider readies whatever platform interface exposes the EC
// register file for writing. Implementations must be idempotent: the
// CLI calls EnsureReady on every invocation regardless of prior state.
type AccessProvider interface {
	EnsureReady() error
}
