// Package lifetrack implements the state engine of a personal tracker
// combining financial accounts and transactions, savings goals, habits and
// mood logs.
//
// The engine is built around a single root aggregate, [AppData], owned by a
// [Store]. All mutations go through [Store.Apply] as atomic, pure
// transitions: an operation either produces a brand-new snapshot or leaves
// the previous one untouched. Account balances are kept consistent with the
// transaction history by the reducer itself (see ledger.go), and habit
// streaks are recomputed from the completion set on every read, never
// stored.
//
// Persistence is a thin adapter ([Persister]) over a durable key-value byte
// store ([KV]); the aggregate is serialized as a single canonical JSON
// record under a fixed, versioned key.
package lifetrack
