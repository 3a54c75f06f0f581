//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// goose (migrations) is declared via the go.mod tool directive:
//
//	go tool goose -dir migrations postgres "$DATABASE_DSN" up
