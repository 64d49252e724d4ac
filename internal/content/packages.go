package content

var servicePackages = []ServicePackage{
	{
		ID:          "starter",
		Name:        "Starter",
		Price:       "$2,499",
		Description: "A fast, polished website for new businesses that need a credible online presence.",
		Delivery:    "2-3 weeks",
		Features: []string{
			"Up to 5 custom-designed pages",
			"Mobile-first responsive layout",
			"Contact form with email notifications",
			"On-page SEO essentials",
			"Google Business Profile setup",
			"30 days of post-launch support",
		},
		Color: "primary",
	},
	{
		ID:          "growth",
		Name:        "Growth",
		Price:       "$4,999",
		Description: "Our most requested build: a conversion-focused site with local SEO baked in.",
		Delivery:    "4-6 weeks",
		Features: []string{
			"Up to 12 custom-designed pages",
			"Conversion copywriting for key pages",
			"Local SEO landing pages for two service areas",
			"Blog with CMS editing",
			"Analytics and call tracking",
			"Core Web Vitals optimisation",
			"90 days of post-launch support",
		},
		Color:   "secondary",
		Popular: true,
	},
	{
		ID:          "premium",
		Name:        "Premium",
		Price:       "$9,999",
		Description: "A complete digital storefront for established businesses ready to dominate their market.",
		Delivery:    "8-10 weeks",
		Features: []string{
			"Unlimited pages and custom templates",
			"Brand refresh and design system",
			"Multi-location SEO strategy",
			"E-commerce or booking integration",
			"Monthly performance reporting",
			"Priority support for 6 months",
		},
		Color: "accent",
	},
}
