package response_models

// Insight is one of the three Fit/Cost/Lifestyle explanation blocks.
type Insight struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ModelPick is one shortlisted vehicle with its explanation.
type ModelPick struct {
	Name string `json:"name"`
	Why  string `json:"why"`
}

// Advice is the engine output returned bare from POST /api/advice.
type Advice struct {
	Intro    string      `json:"intro"`
	Insights []Insight   `json:"insights"`
	Verdict  string      `json:"verdict"`
	Models   []ModelPick `json:"models"`
	Closing  string      `json:"closing"`
}
