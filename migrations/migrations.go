// Package migrations embute os arquivos SQL do goose no binário.
package migrations

import "embed"

// FS contém as migrações versionadas (goose).
//
//go:embed *.sql
var FS embed.FS
