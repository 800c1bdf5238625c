package lead_fx

import (
	"net/http"

	"go.uber.org/fx"

	"drivestyle/internal/services"
)

var Module = fx.Provide(provideLeadService)

func provideLeadService() services.LeadServiceInterface {
	// No timeout override: the relay propagates upstream latency as-is.
	return services.NewLeadService(&http.Client{}, services.EnvRelayConfig)
}
