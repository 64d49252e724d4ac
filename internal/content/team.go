package content

var team = []TeamMember{
	{
		ID:    "ava",
		Name:  "Ava Lindqvist",
		Role:  "Founder & Creative Director",
		Bio:   "Ava has designed websites for more than 200 small businesses and still sketches every homepage by hand first.",
		Photo: "/static/images/team/ava.svg",
	},
	{
		ID:    "marcus",
		Name:  "Marcus Bell",
		Role:  "Lead Developer",
		Bio:   "Marcus builds fast, accessible sites and obsesses over load times on budget phones.",
		Photo: "/static/images/team/marcus.svg",
	},
	{
		ID:    "sofia",
		Name:  "Sofia Reyes",
		Role:  "SEO Strategist",
		Bio:   "Sofia turns local search data into content plans that bring in calls, not just clicks.",
		Photo: "/static/images/team/sofia.svg",
	},
	{
		ID:    "noah",
		Name:  "Noah Adeyemi",
		Role:  "Client Success",
		Bio:   "Noah keeps projects on schedule and makes sure every client knows exactly what happens next.",
		Photo: "/static/images/team/noah.svg",
	},
}
