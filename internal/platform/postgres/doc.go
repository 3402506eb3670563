// Package postgres provides PostgreSQL implementations of the store
// interfaces, mapping driver errors to the store package's sentinel
// errors.
package postgres
