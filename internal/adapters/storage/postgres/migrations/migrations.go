// Package migrations embebe el schema SQL que aplica goose al arrancar.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
