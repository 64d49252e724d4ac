package content

var testimonials = []Testimonial{
	{
		ID:      "t-harbor-dental",
		Author:  "Maya Robinson",
		Role:    "Practice Manager",
		Company: "Harbor Dental",
		Content: "Our new site paid for itself in six weeks. New-patient bookings through the website doubled and the team was a pleasure to work with.",
		Rating:  5,
	},
	{
		ID:      "t-cedar-build",
		Author:  "Luis Ortega",
		Role:    "Owner",
		Company: "Cedar & Stone Builders",
		Content: "They understood the trades. We rank on the first page for every town we serve and the phone has not stopped ringing.",
		Rating:  5,
	},
	{
		ID:      "t-bloom-cafe",
		Author:  "Priya Shah",
		Role:    "Founder",
		Company: "Bloom Cafe",
		Content: "Clear pricing, honest timelines and a site our customers love using on their phones.",
		Rating:  5,
	},
	{
		ID:      "t-summit-law",
		Author:  "Daniel Kim",
		Role:    "Managing Partner",
		Company: "Summit Law Group",
		Content: "Professional from the first call to launch day. The local SEO work brought in clients we would never have reached otherwise.",
		Rating:  4,
	},
}
