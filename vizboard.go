package vizboard

import "embed"

// EmailFS holds the HTML and plaintext email templates, one directory per template.
//
//go:embed templates/emails
var EmailFS embed.FS

// MigrationFS holds the ordered SQL schema migrations applied by vizctl migrate.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
