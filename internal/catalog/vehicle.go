package catalog

import "strings"

type Transmission string

const (
	TransmissionManual Transmission = "MANUAL"
	TransmissionAuto   Transmission = "AUTO"
)

type Market string

const (
	MarketPassenger  Market = "PASSENGER"
	MarketCommercial Market = "COMMERCIAL"
)

// VehicleTypeInfo is the decoded form of the composite vehicleType tag.
// Empty fields mean the tag did not carry that dimension.
type VehicleTypeInfo struct {
	Transmission Transmission
	Market       Market
	Body         string
}

// VehicleRecord is one immutable catalogue entry. Type is decoded once at
// load time so queries never re-scan the raw tag.
type VehicleRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	VehicleType string `json:"vehicleType"`
	MSRP        int    `json:"msrp"`

	Type VehicleTypeInfo `json:"-"`
}

// ParseVehicleType splits a composite tag like "AUTO_COMMERCIAL_PICKUP_BAKKIE"
// into its transmission, market and body dimensions. Tokens that are neither a
// transmission nor a market are rejoined to form the body token.
func ParseVehicleType(vehicleType string) VehicleTypeInfo {
	var info VehicleTypeInfo
	var bodyParts []string

	for _, part := range strings.Split(vehicleType, "_") {
		switch part {
		case "":
		case "MANUAL":
			info.Transmission = TransmissionManual
		case "AUTO":
			info.Transmission = TransmissionAuto
		case "PASSENGER":
			info.Market = MarketPassenger
		case "COMMERCIAL":
			info.Market = MarketCommercial
		default:
			bodyParts = append(bodyParts, part)
		}
	}

	info.Body = strings.Join(bodyParts, "_")
	return info
}

// PrettyType renders a record's decoded type as display text, e.g.
// "Commercial PICKUP BAKKIE Automatic". Every segment is optional.
func PrettyType(v VehicleRecord) string {
	var parts []string

	switch v.Type.Market {
	case MarketPassenger:
		parts = append(parts, "Passenger")
	case MarketCommercial:
		parts = append(parts, "Commercial")
	}

	if v.Type.Body != "" {
		parts = append(parts, strings.ReplaceAll(v.Type.Body, "_", " "))
	}

	switch v.Type.Transmission {
	case TransmissionAuto:
		parts = append(parts, "Automatic")
	case TransmissionManual:
		parts = append(parts, "Manual")
	}

	return strings.Join(parts, " ")
}
