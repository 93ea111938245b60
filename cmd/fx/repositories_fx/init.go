package repositories_fx

import (
	"festiva/internal/repositories"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	repositories.NewCustomerRepository,
	repositories.NewVendorRepository,
	repositories.NewAdminRepository,
	repositories.NewEventRepository,
	repositories.NewGiftRepository,
	repositories.NewMediaRepository,
	repositories.NewVendorEmbeddingRepository,
)
