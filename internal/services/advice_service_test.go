package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivestyle/internal/catalog"
	"drivestyle/internal/models/request_models"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.VehicleRecord{
		{ID: "s1", Name: "Honda Ballade", VehicleType: "AUTO_PASSENGER_SEDAN", MSRP: 379900},
		{ID: "s2", Name: "Toyota Corolla", VehicleType: "AUTO_PASSENGER_SEDAN", MSRP: 419800},
		{ID: "s3", Name: "BMW 3 Series", VehicleType: "AUTO_PASSENGER_SEDAN", MSRP: 799000},
		{ID: "u1", Name: "Toyota Corolla Cross", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV", MSRP: 414800},
		{ID: "u2", Name: "Haval H6", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV", MSRP: 489950},
		{ID: "u3", Name: "Kia Sportage", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV", MSRP: 569995},
		{ID: "u4", Name: "Volkswagen Tiguan", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV", MSRP: 664300},
		{ID: "u5", Name: "Toyota RAV4", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV", MSRP: 699400},
		{ID: "u6", Name: "Toyota Fortuner", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV", MSRP: 799400},
		{ID: "m1", Name: "Suzuki Ertiga", VehicleType: "AUTO_PASSENGER_ESTATE_MPV", MSRP: 314900},
		{ID: "m2", Name: "Hyundai Staria", VehicleType: "AUTO_PASSENGER_ESTATE_MPV", MSRP: 799900},
		{ID: "b1", Name: "Isuzu D-Max", VehicleType: "AUTO_COMMERCIAL_PICKUP_BAKKIE", MSRP: 524500},
		{ID: "b2", Name: "Toyota Hilux", VehicleType: "AUTO_COMMERCIAL_PICKUP_BAKKIE", MSRP: 614600},
		{ID: "b3", Name: "Ford Ranger", VehicleType: "AUTO_COMMERCIAL_PICKUP_BAKKIE", MSRP: 659500},
	})
}

func normalized(over func(*BriefInput)) BriefInput {
	brief := BriefInput{
		Passengers:   "couple",
		Distance:     "urban_daily",
		Budget:       "balanced",
		Ownership:    "neutral",
		Risk:         "certainty",
		Environment:  "suburb",
		Preference:   "suv",
		DrivingStyle: "relaxed",
		ComfortSpace: comfortStandard,
		ComfortNeeds: []string{},
	}
	if over != nil {
		over(&brief)
	}
	return brief
}

func TestNormalizeBriefDefaults(t *testing.T) {
	svc := &AdviceService{catalog: testCatalog()}

	brief := svc.NormalizeBrief(request_models.AdviceRequest{})
	assert.Equal(t, "couple", brief.Passengers)
	assert.Equal(t, "urban_daily", brief.Distance)
	assert.Equal(t, "balanced", brief.Budget)
	assert.Equal(t, "neutral", brief.Ownership)
	assert.Equal(t, "certainty", brief.Risk)
	assert.Equal(t, "suburb", brief.Environment)
	assert.Equal(t, "suv", brief.Preference)
	assert.Equal(t, "relaxed", brief.DrivingStyle)
	assert.Equal(t, comfortStandard, brief.ComfortSpace)
	assert.Empty(t, brief.ComfortNeeds)

	brief = svc.NormalizeBrief(request_models.AdviceRequest{
		Passengers:   "spaceship",
		Distance:     " mixed ",
		ComfortSpace: "ROOMY",
		ComfortNeeds: []string{"big_boot", "teleport", "big_boot", " rear_legroom "},
	})
	assert.Equal(t, "couple", brief.Passengers)
	assert.Equal(t, "mixed", brief.Distance)
	assert.Equal(t, comfortStandard, brief.ComfortSpace)
	assert.Equal(t, []string{"big_boot", "rear_legroom"}, brief.ComfortNeeds)
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		over func(*BriefInput)
		want string
	}{
		{"rough wins first", func(b *BriefInput) { b.Environment = "rough"; b.Passengers = "large_family" }, categoryBakkie},
		{"large family", func(b *BriefInput) { b.Passengers = "large_family" }, categoryMPV},
		{"family", func(b *BriefInput) { b.Passengers = "family" }, categoryLargeSUV},
		{"sedan preference", func(b *BriefInput) { b.Preference = "sedan" }, categorySedan},
		{"default", nil, categoryMidSUV},
		{"easy entry keeps chosen sedan", func(b *BriefInput) { b.Preference = "sedan"; b.ComfortSpace = comfortEasyEntry }, categorySedan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCategory(normalized(tt.over)))
		})
	}
}

func TestInferFuel(t *testing.T) {
	assert.Equal(t, fuelDiesel, inferFuel("long_distance"))
	assert.Equal(t, fuelHybrid, inferFuel("mixed"))
	assert.Equal(t, fuelHybridOrEV, inferFuel("urban_daily"))
	assert.Equal(t, fuelPetrol, inferFuel("very_short"))
	assert.Equal(t, fuelPetrol, inferFuel(""))
}

func TestParseBudgetTarget(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"300k", 300000},
		{"R300k", 300000},
		{"450 000", 450000},
		{"R 650,000", 650000},
		{"550000k", 550000}, // already >= 100k, the k suffix is ignored
		{"", 0},
		{"soon", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBudgetTarget(tt.raw), "raw=%q", tt.raw)
	}
}

func TestRoughEnvironmentSelectsCommercialOnly(t *testing.T) {
	svc := NewAdviceService(testCatalog())

	advice := svc.GenerateAdvice(normalized(func(b *BriefInput) { b.Environment = "rough" }))

	require.NotEmpty(t, advice.Models)
	commercial := map[string]bool{"Isuzu D-Max": true, "Toyota Hilux": true, "Ford Ranger": true}
	for _, m := range advice.Models {
		assert.True(t, commercial[m.Name], "unexpected model %q for rough environment", m.Name)
	}
	assert.Equal(t, fitTextByCategory[categoryBakkie], advice.Insights[0].Text)
}

func TestRoomyHardConstraintNeverBackfills(t *testing.T) {
	// Only two roomy-eligible passenger records: the shortlist must stop at
	// two even though plenty of sedans are available.
	c := catalog.New([]catalog.VehicleRecord{
		{ID: "s1", Name: "Honda Ballade", VehicleType: "AUTO_PASSENGER_SEDAN", MSRP: 379900},
		{ID: "s2", Name: "Toyota Corolla", VehicleType: "AUTO_PASSENGER_SEDAN", MSRP: 419800},
		{ID: "s3", Name: "BMW 3 Series", VehicleType: "AUTO_PASSENGER_SEDAN", MSRP: 799000},
		{ID: "s4", Name: "Audi A3 Sedan", VehicleType: "AUTO_PASSENGER_SEDAN", MSRP: 682000},
		{ID: "u1", Name: "Kia Sportage", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV", MSRP: 569995},
		{ID: "m1", Name: "Hyundai Staria", VehicleType: "AUTO_PASSENGER_ESTATE_MPV", MSRP: 799900},
	})
	svc := NewAdviceService(c)

	advice := svc.GenerateAdvice(normalized(func(b *BriefInput) { b.ComfortSpace = comfortRoomy }))

	require.Len(t, advice.Models, 2)
	for _, m := range advice.Models {
		assert.NotContains(t, m.Name, "Sedan")
		assert.NotEqual(t, "Toyota Corolla", m.Name)
	}
}

func TestRoomyShortlistIsEligibleAndAnnotated(t *testing.T) {
	svc := NewAdviceService(testCatalog())

	advice := svc.GenerateAdvice(normalized(func(b *BriefInput) {
		b.ComfortSpace = comfortRoomy
		b.ComfortNeeds = []string{"rear_legroom", "big_boot"}
	}))

	require.Len(t, advice.Models, shortlistSize)
	for _, m := range advice.Models {
		// Exactly the type description plus the two-annotation cap: roomy and
		// rear-legroom make the cut, big-boot is dropped.
		parts := strings.Split(m.Why, " • ")
		require.Len(t, parts, 3, "why=%q", m.Why)
		assert.Equal(t, noteRoomierBody, parts[1])
		assert.Equal(t, noteRearLegroom, parts[2])
	}
}

func TestModelWhyCapsAnnotations(t *testing.T) {
	brief := normalized(func(b *BriefInput) {
		b.ComfortSpace = comfortRoomy
		b.ComfortNeeds = []string{"rear_legroom", "big_boot"}
	})
	rec := catalog.VehicleRecord{Name: "Kia Sportage", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV"}
	rec.Type = catalog.ParseVehicleType(rec.VehicleType)

	why := modelWhy(brief, rec)
	assert.Equal(t, "Passenger CROSSOVER SUV Automatic • "+noteRoomierBody+" • "+noteRearLegroom, why)

	// Without the roomy note the boot annotation fits inside the cap.
	brief.ComfortSpace = comfortStandard
	why = modelWhy(brief, rec)
	assert.Equal(t, "Passenger CROSSOVER SUV Automatic • "+noteRearLegroom+" • "+noteBootFriendly, why)
}

func TestGenerateAdviceIdempotent(t *testing.T) {
	svc := NewAdviceService(testCatalog())
	brief := normalized(func(b *BriefInput) {
		b.Passengers = "family"
		b.BudgetAmount = "600k"
	})

	first := svc.GenerateAdvice(brief)
	second := svc.GenerateAdvice(brief)
	assert.Equal(t, first, second)
}

func TestBudgetAnchoringTightBand(t *testing.T) {
	svc := NewAdviceService(testCatalog())

	advice := svc.GenerateAdvice(normalized(func(b *BriefInput) {
		b.Budget = "tight"
		b.BudgetAmount = "300k"
	}))

	require.Len(t, advice.Models, shortlistSize)

	// Only the Ertiga sits inside [255000, 345000]; it must lead, and the
	// rest must backfill by ascending distance from 300000.
	assert.Equal(t, "Suzuki Ertiga", advice.Models[0].Name)
	assert.Equal(t, "Honda Ballade", advice.Models[1].Name)
	assert.Equal(t, "Toyota Corolla Cross", advice.Models[2].Name)
	assert.Equal(t, "Toyota Corolla", advice.Models[3].Name)
	assert.Equal(t, "Haval H6", advice.Models[4].Name)
}

func TestFamilyScenario(t *testing.T) {
	svc := NewAdviceService(testCatalog())

	advice := svc.GenerateAdvice(normalized(func(b *BriefInput) {
		b.Passengers = "family"
	}))

	require.Len(t, advice.Insights, 3)
	assert.Equal(t, "Fit", advice.Insights[0].Title)
	assert.Equal(t, "Cost", advice.Insights[1].Title)
	assert.Equal(t, "Lifestyle", advice.Insights[2].Title)
	assert.Equal(t, fitTextByCategory[categoryLargeSUV], advice.Insights[0].Text)
	assert.Equal(t, verdictByCategory[categoryLargeSUV], advice.Verdict)
	assert.Len(t, advice.Models, shortlistSize)
	assert.Equal(t, adviceIntro, advice.Intro)
	assert.Equal(t, adviceClosing, advice.Closing)
}

func TestScoringPrefersBodyFamily(t *testing.T) {
	brief := normalized(func(b *BriefInput) { b.Preference = "sedan" })
	sedan := catalog.VehicleRecord{Name: "Sedan", VehicleType: "AUTO_PASSENGER_SEDAN"}
	sedan.Type = catalog.ParseVehicleType(sedan.VehicleType)
	suv := catalog.VehicleRecord{Name: "SUV", VehicleType: "AUTO_PASSENGER_CROSSOVER_SUV"}
	suv.Type = catalog.ParseVehicleType(suv.VehicleType)

	assert.Equal(t, scoreBodyFamilyMatch+scorePreferenceMatch, scoreRecord(brief, categorySedan, sedan))
	assert.Equal(t, 0, scoreRecord(brief, categorySedan, suv))

	rough := normalized(func(b *BriefInput) { b.Environment = "rough" })
	assert.Equal(t, scoreRoughPenalty, scoreRecord(rough, categoryBakkie, sedan))
	assert.Equal(t, scoreRoughCapable+scorePreferenceMatch, scoreRecord(rough, categoryBakkie, suv))

	family := normalized(func(b *BriefInput) { b.Passengers = "family" })
	mpv := catalog.VehicleRecord{Name: "MPV", VehicleType: "AUTO_PASSENGER_ESTATE_MPV"}
	mpv.Type = catalog.ParseVehicleType(mpv.VehicleType)
	// Roomy-eligible records count as the SUV body family, so an MPV gets
	// both the family-space and the body-family points here.
	assert.Equal(t, scoreBodyFamilyMatch+scoreFamilySpace, scoreRecord(family, categoryLargeSUV, mpv))
}

func TestLifestyleComfortClause(t *testing.T) {
	svc := NewAdviceService(testCatalog())

	plain := svc.GenerateAdvice(normalized(nil))
	roomy := svc.GenerateAdvice(normalized(func(b *BriefInput) { b.ComfortSpace = comfortRoomy }))

	assert.Equal(t, lifestyleTextDefault, plain.Insights[2].Text)
	assert.Equal(t, lifestyleTextDefault+comfortClauseBySpace[comfortRoomy], roomy.Insights[2].Text)
}
