// Package migrations embeds the goose SQL migrations so the server binary,
// cmd/migrate and the integration test harness apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
