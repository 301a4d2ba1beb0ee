// Package ent holds the generated entity client. Run `go generate ./...`
// from the module root after editing anything under ent/schema to
// regenerate it.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
