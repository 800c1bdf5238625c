package advice_fx

import (
	"go.uber.org/fx"

	"drivestyle/internal/catalog"
	"drivestyle/internal/services"
)

var Module = fx.Provide(provideAdviceService)

func provideAdviceService(c *catalog.Catalog) services.AdviceServiceInterface {
	return services.NewAdviceService(c)
}
