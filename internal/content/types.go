package content

// ServicePackage is one of the agency's fixed-price offerings.
type ServicePackage struct {
	ID          string
	Name        string
	Price       string
	Description string
	Delivery    string
	Features    []string
	Color       string
	Popular     bool
}

type Testimonial struct {
	ID      string
	Author  string
	Role    string
	Company string
	Content string
	Rating  int
}

type TeamMember struct {
	ID    string
	Name  string
	Role  string
	Bio   string
	Photo string
}

// Category groups navigation links.
type Category string

const (
	CategoryMain    Category = "main"
	CategoryService Category = "service"
)

// NavLink maps a page key to its path.
type NavLink struct {
	Key      string
	Label    string
	Path     string
	Category Category
}

type Feature struct {
	Icon        string
	Title       string
	Description string
	Color       string
}

type Project struct {
	ID       string
	Title    string
	Client   string
	Category string
	Summary  string
	Image    string
	Results  []string
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

func (p ServicePackage) clone() ServicePackage {
	p.Features = append([]string(nil), p.Features...)
	return p
}

func (p Project) clone() Project {
	p.Results = append([]string(nil), p.Results...)
	return p
}
