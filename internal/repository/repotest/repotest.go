// Package repotest prepara um PostgreSQL real para os testes de repositório.
//
// Os testes só rodam com TEST_DATABASE_URL definida e limpam as tabelas,
// então os pacotes devem rodar em série: go test -p 1 ./internal/repository/...
package repotest

import (
	"database/sql"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"estocando/internal/pkg/database"
	"estocando/migrations"
)

// Open conecta, aplica as migrações e esvazia as tabelas. Pula o teste sem banco.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL não definida; pulando teste de repositório")
	}

	db, err := database.NewPostgresDB(dsn)
	if err != nil {
		t.Skipf("PostgreSQL indisponível: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("goose dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		t.Fatalf("goose up: %v", err)
	}

	Truncate(t, db)
	return db
}

// Truncate esvazia todas as tabelas da aplicação.
func Truncate(t *testing.T, db *sql.DB) {
	t.Helper()
	if _, err := db.Exec(`TRUNCATE stock_adjustments, request_logs, items, users`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}
