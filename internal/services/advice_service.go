package services

import (
	"sort"
	"strconv"
	"strings"

	"drivestyle/internal/catalog"
	"drivestyle/internal/models/request_models"
	"drivestyle/internal/models/response_models"
)

// Inferred vehicle categories.
const (
	categorySedan    = "sedan"
	categoryMidSUV   = "mid_suv"
	categoryLargeSUV = "large_suv"
	categoryMPV      = "mpv"
	categoryBakkie   = "bakkie"
)

// Fuel leans, used only to pick the Cost insight.
const (
	fuelPetrol     = "petrol"
	fuelDiesel     = "diesel"
	fuelHybrid     = "hybrid"
	fuelHybridOrEV = "hybrid_or_ev"
)

// Comfort/space preferences.
const (
	comfortCompactOK = "compact_ok"
	comfortStandard  = "standard"
	comfortRoomy     = "roomy"
	comfortEasyEntry = "easy_entry"
)

// Scoring weights. Arbitrary but fixed: tuning them changes shortlists, so
// any change needs the regression tests updated alongside.
const (
	scoreBodyFamilyMatch = 4
	scoreRoughCapable    = 3
	scoreRoughPenalty    = -3
	scoreFamilySpace     = 2
	scorePreferenceMatch = 2
)

const shortlistSize = 5

// Budget tolerance bands by budget attitude.
var budgetBandByAttitude = map[string]float64{
	"tight":    0.15,
	"balanced": 0.30,
	"flexible": 0.50,
}

// Tokens that mark a record as roomy-eligible, matched against the lowercased
// type tag and name.
var roomyTokens = []string{
	"suv", "crossover", "crossover_suv", "mpv", "van", "bus",
	"pickup", "bakkie", "doublecab", "crew", "4x4",
}

// BriefInput is a normalized questionnaire submission. Every field holds one
// of its documented values; NormalizeBrief is the only constructor callers
// should use for raw payloads.
type BriefInput struct {
	Passengers   string
	Distance     string
	Budget       string
	Ownership    string
	Risk         string
	Environment  string
	Preference   string
	DrivingStyle string
	BudgetAmount string
	ComfortSpace string
	ComfortNeeds []string
}

type AdviceServiceInterface interface {
	NormalizeBrief(req request_models.AdviceRequest) BriefInput
	GenerateAdvice(brief BriefInput) response_models.Advice
}

type AdviceService struct {
	catalog *catalog.Catalog
}

func NewAdviceService(c *catalog.Catalog) AdviceServiceInterface {
	return &AdviceService{catalog: c}
}

var (
	passengersAllowed   = []string{"alone", "couple", "family", "large_family"}
	distanceAllowed     = []string{"very_short", "urban_daily", "mixed", "long_distance"}
	budgetAllowed       = []string{"tight", "balanced", "flexible"}
	ownershipAllowed    = []string{"loves_cars", "neutral", "appliance"}
	riskAllowed         = []string{"certainty", "risk_ok"}
	environmentAllowed  = []string{"city", "suburb", "rough"}
	preferenceAllowed   = []string{"suv", "sedan", "none"}
	drivingStyleAllowed = []string{"relaxed", "balanced", "enthusiastic", "heavy_duty"}
	comfortSpaceAllowed = []string{comfortCompactOK, comfortStandard, comfortRoomy, comfortEasyEntry}
	comfortNeedsAllowed = []string{"easy_in_out", "wide_seats", "rear_legroom", "big_boot"}
)

// NormalizeBrief maps a raw payload onto the documented enum domains. Every
// unrecognized or missing value becomes its default, so the engine never sees
// an out-of-domain input.
func (a *AdviceService) NormalizeBrief(req request_models.AdviceRequest) BriefInput {
	return BriefInput{
		Passengers:   oneOf(req.Passengers, passengersAllowed, "couple"),
		Distance:     oneOf(req.Distance, distanceAllowed, "urban_daily"),
		Budget:       oneOf(req.Budget, budgetAllowed, "balanced"),
		Ownership:    oneOf(req.Ownership, ownershipAllowed, "neutral"),
		Risk:         oneOf(req.Risk, riskAllowed, "certainty"),
		Environment:  oneOf(req.Environment, environmentAllowed, "suburb"),
		Preference:   oneOf(req.Preference, preferenceAllowed, "suv"),
		DrivingStyle: oneOf(req.DrivingStyle, drivingStyleAllowed, "relaxed"),
		BudgetAmount: strings.TrimSpace(req.BudgetAmount),
		ComfortSpace: oneOf(req.ComfortSpace, comfortSpaceAllowed, comfortStandard),
		ComfortNeeds: dedupAllowed(req.ComfortNeeds, comfortNeedsAllowed),
	}
}

func oneOf(value string, allowed []string, fallback string) string {
	v := strings.TrimSpace(value)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return fallback
}

func dedupAllowed(values []string, allowed []string) []string {
	out := []string{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if oneOf(v, allowed, "") != v || v == "" {
			continue
		}
		seen := false
		for _, o := range out {
			if o == v {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out
}

// candidate is one scored catalogue record during shortlist selection.
type candidate struct {
	rec    catalog.VehicleRecord
	score  int
	dist   int
	inBand bool
}

// GenerateAdvice runs the full decision table: category and fuel inference,
// candidate pooling, scoring, budget anchoring, ranking and narrative
// assembly. Pure over the catalogue snapshot, so identical briefs always
// produce identical advice.
func (a *AdviceService) GenerateAdvice(brief BriefInput) response_models.Advice {
	category := inferCategory(brief)
	fuel := inferFuel(brief.Distance)

	pool := a.candidatePool(brief, category)

	target := parseBudgetTarget(brief.BudgetAmount)
	band := budgetBandByAttitude[brief.Budget]

	candidates := make([]candidate, 0, len(pool))
	for _, rec := range pool {
		cand := candidate{rec: rec, score: scoreRecord(brief, category, rec)}
		if target > 0 {
			cand.dist = absInt(rec.MSRP - target)
			lo := int(float64(target) * (1 - band))
			hi := int(float64(target) * (1 + band))
			cand.inBand = rec.MSRP >= lo && rec.MSRP <= hi
		}
		candidates = append(candidates, cand)
	}

	ranked := rankCandidates(candidates, target)
	if len(ranked) > shortlistSize {
		ranked = ranked[:shortlistSize]
	}

	models := make([]response_models.ModelPick, 0, len(ranked))
	for _, cand := range ranked {
		models = append(models, response_models.ModelPick{
			Name: cand.rec.Name,
			Why:  modelWhy(brief, cand.rec),
		})
	}

	return response_models.Advice{
		Intro:    adviceIntro,
		Insights: buildInsights(brief, category, fuel),
		Verdict:  verdictByCategory[category],
		Models:   models,
		Closing:  adviceClosing,
	}
}

// inferCategory resolves the target vehicle category; first match wins, with
// an easy-entry override away from sedans.
func inferCategory(brief BriefInput) string {
	category := categoryMidSUV
	switch {
	case brief.Environment == "rough":
		category = categoryBakkie
	case brief.Passengers == "large_family":
		category = categoryMPV
	case brief.Passengers == "family":
		category = categoryLargeSUV
	case brief.Preference == "sedan":
		category = categorySedan
	}

	if brief.ComfortSpace == comfortEasyEntry && brief.Preference != "sedan" && category == categorySedan {
		category = categoryMidSUV
	}
	return category
}

func inferFuel(distance string) string {
	switch distance {
	case "long_distance":
		return fuelDiesel
	case "mixed":
		return fuelHybrid
	case "urban_daily":
		return fuelHybridOrEV
	default:
		return fuelPetrol
	}
}

// candidatePool queries the catalogue by market and, for a roomy request,
// applies the hard eligibility filter. The roomy filter is deliberately never
// backfilled: scarce eligible inventory means a short shortlist.
func (a *AdviceService) candidatePool(brief BriefInput, category string) []catalog.VehicleRecord {
	market := catalog.MarketPassenger
	if category == categoryBakkie {
		market = catalog.MarketCommercial
	}

	pool := a.catalog.Query(catalog.Filter{MarketAnyOf: []catalog.Market{market}})

	if brief.ComfortSpace == comfortRoomy && brief.Preference != "sedan" {
		eligible := pool[:0:0]
		for _, rec := range pool {
			if roomyEligible(rec) {
				eligible = append(eligible, rec)
			}
		}
		pool = eligible
	}
	return pool
}

func roomyEligible(rec catalog.VehicleRecord) bool {
	text := strings.ToLower(rec.VehicleType + " " + rec.Name)
	for _, token := range roomyTokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

func sedanLike(body string) bool {
	return strings.Contains(body, "SEDAN") || strings.Contains(body, "SALOON")
}

func suvLike(body string) bool {
	return strings.Contains(body, "SUV") || strings.Contains(body, "CROSSOVER")
}

func mpvLike(body string) bool {
	return strings.Contains(body, "MPV") || strings.Contains(body, "VAN") || strings.Contains(body, "BUS")
}

func bakkieLike(body string) bool {
	return strings.Contains(body, "PICKUP") || strings.Contains(body, "BAKKIE")
}

func bodyFamilyMatch(category string, rec catalog.VehicleRecord) bool {
	body := rec.Type.Body
	switch category {
	case categorySedan:
		return sedanLike(body)
	case categoryMidSUV, categoryLargeSUV:
		return suvLike(body) || roomyEligible(rec)
	case categoryMPV:
		return mpvLike(body)
	case categoryBakkie:
		return bakkieLike(body)
	}
	return false
}

func scoreRecord(brief BriefInput, category string, rec catalog.VehicleRecord) int {
	body := rec.Type.Body
	score := 0

	if bodyFamilyMatch(category, rec) {
		score += scoreBodyFamilyMatch
	}

	if brief.Environment == "rough" {
		if bakkieLike(body) || suvLike(body) {
			score += scoreRoughCapable
		} else {
			score += scoreRoughPenalty
		}
	}

	if brief.Passengers == "family" || brief.Passengers == "large_family" {
		if mpvLike(body) || suvLike(body) {
			score += scoreFamilySpace
		}
	}

	if brief.Preference == "suv" && suvLike(body) {
		score += scorePreferenceMatch
	}
	if brief.Preference == "sedan" && sedanLike(body) {
		score += scorePreferenceMatch
	}

	return score
}

// parseBudgetTarget turns free text like "R300k" or "450 000" into a rand
// target. Unparseable or non-positive input means no target.
func parseBudgetTarget(raw string) int {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	if strings.Contains(strings.ToLower(raw), "k") && n < 100000 {
		n *= 1000
	}
	if n <= 0 {
		return 0
	}
	return n
}

// rankCandidates orders the pool for selection. With a budget target the
// in-band candidates come first (score, then price distance, then name) and
// out-of-band candidates backfill by ascending price distance. Without a
// target, or when nothing is in band, the whole pool is ranked by score.
func rankCandidates(candidates []candidate, target int) []candidate {
	var inBand, rest []candidate
	for _, cand := range candidates {
		if cand.inBand {
			inBand = append(inBand, cand)
		} else {
			rest = append(rest, cand)
		}
	}

	byScore := func(list []candidate) {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].score != list[j].score {
				return list[i].score > list[j].score
			}
			if list[i].dist != list[j].dist {
				return list[i].dist < list[j].dist
			}
			return list[i].rec.Name < list[j].rec.Name
		})
	}

	if target == 0 || len(inBand) == 0 {
		all := append(inBand, rest...)
		byScore(all)
		return all
	}

	byScore(inBand)
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].dist != rest[j].dist {
			return rest[i].dist < rest[j].dist
		}
		if rest[i].score != rest[j].score {
			return rest[i].score > rest[j].score
		}
		return rest[i].rec.Name < rest[j].rec.Name
	})
	return append(inBand, rest...)
}

// modelWhy builds the per-model explanation: the pretty type description plus
// at most two comfort annotations.
func modelWhy(brief BriefInput, rec catalog.VehicleRecord) string {
	parts := []string{catalog.PrettyType(rec)}

	var notes []string
	if brief.ComfortSpace == comfortRoomy {
		notes = append(notes, noteRoomierBody)
		if !roomyEligible(rec) && brief.Preference != "sedan" {
			// Unreachable behind the hard filter; kept so a future filter
			// change still flags the mismatch.
			notes = append(notes, noteSpaceTradeOff)
		}
	}
	for _, need := range brief.ComfortNeeds {
		switch need {
		case "rear_legroom":
			notes = append(notes, noteRearLegroom)
		case "big_boot":
			notes = append(notes, noteBootFriendly)
		}
	}

	seen := map[string]bool{}
	for _, note := range notes {
		if len(parts) > 2 {
			break
		}
		if !seen[note] {
			seen[note] = true
			parts = append(parts, note)
		}
	}

	return strings.Join(parts, " • ")
}

func buildInsights(brief BriefInput, category, fuel string) []response_models.Insight {
	lifestyle, ok := lifestyleTextByStyle[brief.DrivingStyle]
	if !ok {
		lifestyle = lifestyleTextDefault
	}
	if clause, ok := comfortClauseBySpace[brief.ComfortSpace]; ok {
		lifestyle += clause
	}

	return []response_models.Insight{
		{Title: "Fit", Text: fitTextByCategory[category]},
		{Title: "Cost", Text: costTextByFuel[fuel]},
		{Title: "Lifestyle", Text: lifestyle},
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
