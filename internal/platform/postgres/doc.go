// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. All implementations accept a store.DBTX so they work
// with either a database connection or a transaction managed by the caller.
package postgres
