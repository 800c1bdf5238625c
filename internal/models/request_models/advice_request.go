package request_models

// AdviceRequest is the raw questionnaire payload. Every field is optional;
// the advice service normalizes unknown or missing values to defaults, so
// there are no binding constraints here.
type AdviceRequest struct {
	Passengers   string   `json:"passengers"`
	Distance     string   `json:"distance"`
	Budget       string   `json:"budget"`
	Ownership    string   `json:"ownership"`
	Risk         string   `json:"risk"`
	Environment  string   `json:"environment"`
	Preference   string   `json:"preference"`
	DrivingStyle string   `json:"drivingStyle"`
	BudgetAmount string   `json:"budgetAmount"`
	ComfortSpace string   `json:"comfortSpace"`
	ComfortNeeds []string `json:"comfortNeeds"`
}

// AdviceRequestFromRaw salvages fields one by one from a loosely decoded
// body. A field of the wrong JSON type defaults by itself instead of
// discarding its well-formed siblings.
func AdviceRequestFromRaw(raw map[string]any) AdviceRequest {
	str := func(key string) string {
		s, _ := raw[key].(string)
		return s
	}

	var needs []string
	if list, ok := raw["comfortNeeds"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				needs = append(needs, s)
			}
		}
	}

	return AdviceRequest{
		Passengers:   str("passengers"),
		Distance:     str("distance"),
		Budget:       str("budget"),
		Ownership:    str("ownership"),
		Risk:         str("risk"),
		Environment:  str("environment"),
		Preference:   str("preference"),
		DrivingStyle: str("drivingStyle"),
		BudgetAmount: str("budgetAmount"),
		ComfortSpace: str("comfortSpace"),
		ComfortNeeds: needs,
	}
}
