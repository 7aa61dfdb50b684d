package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema crea las tablas si no existen (DB_AUTO_MIGRATE=true). Es idempotente y
// corre en una sola transacción: o se crean todas las tablas o ninguna.
func EnsureSchema(ctx context.Context, runner *TxRunner) error {
	return runner.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("aplicar schema: %w", err)
		}
		return nil
	})
}
