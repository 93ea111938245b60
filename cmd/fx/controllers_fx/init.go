package controllers_fx

import (
	"festiva/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	controllers.NewUserController,
	controllers.NewEventController,
	controllers.NewGiftController,
	controllers.NewVendorController,
	controllers.NewMediaController,
)
