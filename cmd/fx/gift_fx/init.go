package gift_fx

import (
	"festiva/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	services.NewGiftService,
)
