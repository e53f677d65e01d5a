package render

import "github.com/ziadkadry99/folio/internal/content"

// RenderHome fills the hero text and its social icons.
func (r *Renderer) RenderHome(home *content.Home) error {
	if home == nil {
		return nil
	}
	r.setText(".home__title", home.Title)
	r.setText(".home__subtitle", home.Subtitle)
	r.setText(".home__description", home.Description)
	if home.Social == nil {
		return nil
	}
	return r.fill(".home__social", "home-social", home.Social)
}
