// Package portfolio holds the static site content: biography, skills,
// projects and education.
package portfolio

type CTA struct {
	Label    string `yaml:"label"`
	Href     string `yaml:"href"`
	Disabled bool   `yaml:"disabled"`
}

// Project is a gallery entry as authored. Image is the declared image path.
type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Tags         []string `yaml:"tags"`
	Category     string   `yaml:"category"`
	Image        string   `yaml:"image"`
	PrimaryCTA   CTA      `yaml:"primaryCTA"`
	SecondaryCTA *CTA     `yaml:"secondaryCTA,omitempty"`
}

// ResolvedProject is a Project whose image has been resolved to a served URL.
// Image is empty when the declared path matched nothing.
type ResolvedProject struct {
	Project
	// Index is the position in the full project list.
	Index int
}

type SkillCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	StartDate   string   `yaml:"startDate"`
	EndDate     string   `yaml:"endDate"`
	Logo        string   `yaml:"logo"`
	Highlights  []string `yaml:"highlights"`
}

type Social struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type Site struct {
	Name      string          `yaml:"name"`
	Role      string          `yaml:"role"`
	Location  string          `yaml:"location"`
	Email     string          `yaml:"email"`
	Portrait  string          `yaml:"portrait"`
	About     string          `yaml:"about"`
	Socials   []Social        `yaml:"socials"`
	Skills    []SkillCategory `yaml:"skills"`
	Projects  []Project       `yaml:"projects"`
	Education []Education     `yaml:"education"`

	// FilterCategories are the gallery filter labels in display order.
	FilterCategories []string `yaml:"filterCategories"`
}
