// Package store houses concrete implementations of core.SnapshotStore. The
// interface itself lives in the core package so higher layers depend on the
// contract, not on a backend. Additional backends belong in sub-packages
// (see store/sqlite); only the wiring layer decides which one to
// instantiate.
package store
