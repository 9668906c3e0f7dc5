package model

// Intake form option lists served to the presentation layer.

var InterestOptions = []string{
	"Culture & History",
	"Food & Dining",
	"Nature & Outdoors",
	"Shopping",
	"Nightlife",
	"Art & Museums",
	"Adventure",
	"Relaxation",
}

var ConstraintOptions = []string{
	"Limited mobility",
	"Budget-conscious",
	"Traveling with kids",
	"Vegetarian/Vegan friendly",
}

// TravelStyleOption describes one pacing choice for the intake form.
type TravelStyleOption struct {
	Value       TravelStyle `json:"value"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
}

var TravelStyleOptions = []TravelStyleOption{
	{
		Value:       TravelStyleRelaxed,
		Label:       "Relaxed",
		Description: "Fewer stops, more time at each place. Perfect for leisurely exploration.",
	},
	{
		Value:       TravelStyleBalanced,
		Label:       "Balanced",
		Description: "A good mix of activities and downtime. See the highlights without rushing.",
	},
	{
		Value:       TravelStylePacked,
		Label:       "Packed",
		Description: "Maximize your time. Great for short trips or ambitious travelers.",
	},
}
