package content

// Page keys with hand-built pages. City and service landing pages add their
// own keys from the page records.
const (
	KeyHome      = "home"
	KeyWebDesign = "web-design"
	KeySEO       = "seo"
	KeyContact   = "contact"
	KeyProjects  = "projects"
	KeyAbout     = "about"
)

var navLinks = []NavLink{
	{Key: KeyHome, Label: "Home", Path: "/", Category: CategoryMain},
	{Key: KeyWebDesign, Label: "Web Design", Path: "/web-design", Category: CategoryService},
	{Key: KeySEO, Label: "SEO", Path: "/seo", Category: CategoryService},
	{Key: KeyProjects, Label: "Projects", Path: "/projects", Category: CategoryMain},
	{Key: KeyAbout, Label: "About", Path: "/about", Category: CategoryMain},
	{Key: KeyContact, Label: "Contact", Path: "/contact", Category: CategoryMain},
}
