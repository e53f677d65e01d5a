package render

import "github.com/ziadkadry99/folio/internal/content"

// RenderPortfolio fills the project cards and appends a detail modal per
// project to the body.
func (r *Renderer) RenderPortfolio(p *content.Portfolio) error {
	if p == nil {
		return nil
	}
	r.setText("#portfolio .section__title", p.Title)
	r.setText("#portfolio .section__subtitle", p.Subtitle)

	container := r.first(".portfolio__container")
	if container == nil || p.Projects == nil {
		return nil
	}
	if err := setFragment(container, "projects", p.Projects); err != nil {
		return err
	}
	return r.appendToBody("project-modals", p.Projects)
}
