package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"inventuagro/internal/domain/catalogs/client"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/config"
	"inventuagro/internal/domain/documents/quotation"
)

// MigrationTarget implements migration.Target. Every upsert is keyed by
// id so a retried migration run never duplicates rows.
type MigrationTarget struct {
	txManager *TxManager
	configs   *ConfigRepo
}

// NewMigrationTarget creates a migration target over the database.
func NewMigrationTarget(txManager *TxManager) *MigrationTarget {
	return &MigrationTarget{
		txManager: txManager,
		configs:   NewConfigRepo(txManager),
	}
}

// upsert builds INSERT ... ON CONFLICT (id) DO UPDATE from db tags.
func (t *MigrationTarget) upsert(ctx context.Context, table string, cols []string, entity any) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filtered := make(map[string]any, len(cols))
	updates := make([]string, 0, len(cols))
	for _, col := range cols {
		val, ok := data[col]
		if !ok {
			continue
		}
		filtered[col] = val
		if col != "id" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Insert(table).
		SetMap(filtered).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", "))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := t.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func (t *MigrationTarget) UpsertMaterial(ctx context.Context, m *material.Material) error {
	return t.upsert(ctx, "cat_materials", ExtractDBColumns[material.Material](), m)
}

func (t *MigrationTarget) UpsertOperation(ctx context.Context, o *operation.Operation) error {
	return t.upsert(ctx, "cat_operations", ExtractDBColumns[operation.Operation](), o)
}

func (t *MigrationTarget) UpsertClient(ctx context.Context, c *client.Client) error {
	return t.upsert(ctx, "cat_clients", ExtractDBColumns[client.Client](), c)
}

func (t *MigrationTarget) UpsertProduct(ctx context.Context, p *product.Product) error {
	return t.upsert(ctx, "cat_products", ExtractDBColumns[product.Product](), p)
}

func (t *MigrationTarget) UpsertQuotation(ctx context.Context, q *quotation.Quotation) error {
	return t.upsert(ctx, "doc_quotations", ExtractDBColumns[quotation.Quotation](), q)
}

func (t *MigrationTarget) SaveConfiguration(ctx context.Context, cfg *config.Configuration) error {
	return t.configs.Save(ctx, cfg)
}
