package controllers_fx

import (
	"go.uber.org/fx"

	"drivestyle/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAdviceController),
	fx.Provide(controllers.NewLeadController))
