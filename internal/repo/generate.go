// Package repo holds the generated Ent client. Run `go generate ./...`
// after changing anything under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
