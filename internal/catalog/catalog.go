package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Catalog is a read-only snapshot of the vehicle catalogue. It is loaded once
// at startup and shared across requests without synchronization; nothing
// mutates it after construction.
type Catalog struct {
	records []VehicleRecord
}

// New builds a catalogue from pre-assembled records, decoding each record's
// composite type tag. Used by tests and by Load.
func New(records []VehicleRecord) *Catalog {
	decoded := make([]VehicleRecord, 0, len(records))
	for _, r := range records {
		r.Type = ParseVehicleType(r.VehicleType)
		decoded = append(decoded, r)
	}
	return &Catalog{records: decoded}
}

// Load reads the static vehicles.json artifact produced by the buildcatalog
// tool and returns the in-memory snapshot.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", path, err)
	}

	var records []VehicleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalogue %s: %w", path, err)
	}

	return New(records), nil
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns every record in storage order.
func (c *Catalog) All() []VehicleRecord {
	out := make([]VehicleRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Filter narrows a catalogue query. All fields are optional and combined with
// logical AND. A record missing a dimension is excluded by any clause that
// constrains that dimension.
type Filter struct {
	TransmissionAnyOf []Transmission
	MarketAnyOf       []Market
	BodyAnyOf         []string
}

// Query returns the records matching the filter, in storage order. An empty
// filter returns the whole catalogue.
func (c *Catalog) Query(f Filter) []VehicleRecord {
	var out []VehicleRecord
	for _, r := range c.records {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r VehicleRecord, f Filter) bool {
	if len(f.TransmissionAnyOf) > 0 {
		if r.Type.Transmission == "" || !containsTransmission(f.TransmissionAnyOf, r.Type.Transmission) {
			return false
		}
	}

	if len(f.MarketAnyOf) > 0 {
		if r.Type.Market == "" || !containsMarket(f.MarketAnyOf, r.Type.Market) {
			return false
		}
	}

	if len(f.BodyAnyOf) > 0 {
		body := strings.ToUpper(r.Type.Body)
		if body == "" {
			return false
		}
		found := false
		for _, b := range f.BodyAnyOf {
			if strings.Contains(body, strings.ToUpper(b)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func containsTransmission(set []Transmission, t Transmission) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}

func containsMarket(set []Market, m Market) bool {
	for _, s := range set {
		if s == m {
			return true
		}
	}
	return false
}
