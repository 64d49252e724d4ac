package content

var features = []Feature{
	{"lucide--gauge", "Built for Speed", "Every site we ship scores 90+ on mobile performance, because slow pages lose customers before they read a word.", "primary"},
	{"lucide--map-pin", "Local SEO Included", "Service-area pages, Google Business Profile tuning and schema markup so nearby customers find you first.", "secondary"},
	{"lucide--pen-tool", "Design That Converts", "Layouts planned around the calls, bookings and quotes your business actually needs.", "accent"},
	{"lucide--shield-check", "Fixed, Honest Pricing", "One price agreed up front. No hourly surprises, no lock-in contracts.", "primary"},
	{"lucide--smartphone", "Mobile First", "Designed on a phone before a desktop, because that is where most of your visitors are.", "secondary"},
	{"lucide--life-buoy", "Real Support", "A named person who answers, plus post-launch support included in every package.", "accent"},
}

var stats = []Stat{
	{Value: "240+", Label: "Websites launched"},
	{Value: "4.9/5", Label: "Average client rating"},
	{Value: "12", Label: "Years in business"},
	{Value: "3x", Label: "Average lead increase"},
}

var projects = []Project{
	{
		ID:       "harbor-dental",
		Title:    "Booking-first dental website",
		Client:   "Harbor Dental",
		Category: "Healthcare",
		Summary:  "A calm, accessible redesign with online booking front and centre.",
		Image:    "/static/images/projects/harbor-dental.svg",
		Results:  []string{"2x new-patient bookings", "Page load under 1.2s", "Top 3 for 'dentist near me'"},
	},
	{
		ID:       "cedar-stone",
		Title:    "Multi-town contractor SEO",
		Client:   "Cedar & Stone Builders",
		Category: "Construction",
		Summary:  "Twelve service-area pages and a project gallery that sells the craftsmanship.",
		Image:    "/static/images/projects/cedar-stone.svg",
		Results:  []string{"First page in 11 towns", "68% more quote requests"},
	},
	{
		ID:       "bloom-cafe",
		Title:    "Cafe site with online ordering",
		Client:   "Bloom Cafe",
		Category: "Hospitality",
		Summary:  "A bright, photo-led site with ordering and catering enquiries.",
		Image:    "https://images.northwind.studio/projects/bloom-cafe.jpg",
		Results:  []string{"30% of orders now online", "Catering enquiries tripled"},
	},
	{
		ID:       "summit-law",
		Title:    "Trust-building law firm rebrand",
		Client:   "Summit Law Group",
		Category: "Professional services",
		Summary:  "A refined brand and practice-area content that answers clients' first questions.",
		Image:    "/static/images/projects/summit-law.svg",
		Results:  []string{"45% longer visit duration", "Consultation requests up 52%"},
	},
}

var homeFAQs = []FAQ{
	{Question: "How long does a website take?", Answer: "Most projects launch in two to ten weeks depending on the package. We agree a launch date before any work starts."},
	{Question: "Do I own my website?", Answer: "Yes. You own the domain, the content and the design. We hand over every login at launch."},
	{Question: "Can you work with my existing brand?", Answer: "Absolutely. We can build on your current logo and colours or refresh them as part of the Premium package."},
	{Question: "What happens after launch?", Answer: "Every package includes post-launch support, and we offer optional care plans for updates and reporting."},
}
