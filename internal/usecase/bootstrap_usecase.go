package usecase

import "context"

// BootstrapUsecase prepares storage before the service accepts traffic.
type BootstrapUsecase interface {
	// Initialize migrates the schema and seeds the default groups.
	Initialize(ctx context.Context) error
	// Seed inserts the default groups in a single transaction.
	Seed(ctx context.Context) error
}
