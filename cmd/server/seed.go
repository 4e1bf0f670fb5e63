package main

import (
	"context"

	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/infrastructure/storage/postgres"
	"inventuagro/internal/infrastructure/storage/postgres/catalog_repo"
)

// seedCatalogs inserts the starter material and operation records so cost
// derivation works on a fresh database. Non-empty catalogs are untouched.
func seedCatalogs(ctx context.Context, txManager *postgres.TxManager) error {
	materials := material.NewService(catalog_repo.NewMaterialRepo(txManager), txManager)
	if err := materials.SeedDefaults(ctx); err != nil {
		return err
	}

	operations := operation.NewService(catalog_repo.NewOperationRepo(txManager), txManager)
	return operations.SeedDefaults(ctx)
}
