package vendor_fx

import (
	"festiva/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	services.NewVendorService,
)
