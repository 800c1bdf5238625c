package services

// Canned narrative for the advice payload. Keyed by the inferred category,
// fuel lean and driving style; picked verbatim, never generated.

const adviceIntro = "Thanks — based on your answers, here’s the direction that best fits your day-to-day and the ownership experience you’re aiming for."

const adviceClosing = "Want me to narrow it down further?"

var fitTextByCategory = map[string]string{
	categorySedan:    "Because your passenger/practical needs are lighter, a sedan keeps life simple — easy to park, easy to run, and comfortable for daily driving.",
	categoryMidSUV:   "Because you want flexibility without bulk, a mid-size SUV is the sweet spot — boot space and ride height, without the size penalty of a big SUV.",
	categoryLargeSUV: "Because your use leans toward passengers and carrying, a larger SUV reduces compromise — especially when the vehicle is actually full.",
	categoryMPV:      "Because people + luggage adds up quickly, an MPV gives you space efficiency you can’t fake with an SUV.",
	categoryBakkie:   "Because your environment/use leans rugged, a bakkie/4x4-capable option makes the most sense.",
}

var costTextByFuel = map[string]string{
	fuelDiesel:     "Because you do longer distances, diesel can make sense for relaxed cruising and real-world efficiency.",
	fuelHybrid:     "Because your driving is mixed, a hybrid can reduce running costs without requiring you to change your habits.",
	fuelHybridOrEV: "Because stop-start traffic punishes fuel economy, hybrid (or EV if charging is truly easy for you) can lower monthly running costs.",
	fuelPetrol:     "Because short trips are common, petrol is usually the simplest and most predictable to own.",
}

var lifestyleTextByStyle = map[string]string{
	"enthusiastic": "Because you like driving, we choose something that feels responsive and confident — fun without being fragile.",
	"heavy_duty":   "Because capability matters, we prioritise stability and strength over ‘nice-to-have’ features.",
}

const lifestyleTextDefault = "Because you want an easy daily experience, comfort and simplicity should be the priority."

var verdictByCategory = map[string]string{
	categoryMidSUV:   "This is the ‘smart middle’ choice — practical enough for real life, without paying for space you don’t use.",
	categorySedan:    "Keep it simple and predictable — you’ll win on ownership, not just purchase day.",
	categoryLargeSUV: "If you’re even slightly on the fence about space, go bigger — regret usually comes from undersizing.",
	categoryMPV:      "If you need space, own it — MPV practicality is hard to beat when life gets busy.",
	categoryBakkie:   "If your roads and use are rough, buy the right tool — capability pays you back later.",
}

var comfortClauseBySpace = map[string]string{
	comfortRoomy:     " We’ve also weighted the shortlist toward genuinely roomy body shapes, so the space is real rather than implied.",
	comfortEasyEntry: " Easy entry and exit matters here, so the shortlist leans toward upright designs you step into rather than drop into.",
}

// Annotation phrases appended to a model's why text.
const (
	noteRoomierBody   = "Roomier body shape"
	noteRearLegroom   = "Better chance of rear legroom"
	noteBootFriendly  = "Boot-friendly"
	noteSpaceTradeOff = "Space trade-off"
)
