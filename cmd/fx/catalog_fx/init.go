package catalog_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"drivestyle/internal/catalog"
)

var Module = fx.Provide(provideCatalog)

func provideCatalog() *catalog.Catalog {
	path := os.Getenv("VEHICLES_JSON_PATH")
	if path == "" {
		path = "data/vehicles.json"
	}

	c, err := catalog.Load(path)
	if err != nil {
		log.Fatalf("Failed to load vehicle catalogue: %v", err)
	}

	log.Printf("Loaded vehicle catalogue: %d records from %s", c.Len(), path)
	return c
}
