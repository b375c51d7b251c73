package portfolio

import "github.com/Zachkp/portfolio/internal/lightbox"

// AllCategories is the filter label that matches every project.
const AllCategories = "All"

// ImageResolver maps a declared image path to a served URL, or "".
type ImageResolver interface {
	Resolve(declared string) string
}

// ResolveProjects resolves every project image once, keeping order.
func ResolveProjects(projects []Project, r ImageResolver) []ResolvedProject {
	out := make([]ResolvedProject, len(projects))
	for i, p := range projects {
		p.Image = r.Resolve(p.Image)
		out[i] = ResolvedProject{Project: p, Index: i}
	}
	return out
}

// LightboxImages builds one overlay entry per project, in the same order.
func LightboxImages(projects []ResolvedProject) []lightbox.Image {
	out := make([]lightbox.Image, len(projects))
	for i, p := range projects {
		out[i] = lightbox.Image{Src: p.Image, Title: p.Title, Alt: p.Description}
	}
	return out
}

// FilterProjects keeps the projects in category. AllCategories and "" keep
// everything.
func FilterProjects(projects []ResolvedProject, category string) []ResolvedProject {
	if category == "" || category == AllCategories {
		return projects
	}
	var out []ResolvedProject
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
