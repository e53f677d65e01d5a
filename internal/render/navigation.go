package render

import "github.com/ziadkadry99/folio/internal/content"

// RenderNavigation fills the logo and the menu list.
func (r *Renderer) RenderNavigation(nav *content.Navigation) error {
	if nav == nil {
		return nil
	}
	r.setText(".nav__logo", nav.Logo)
	if nav.Menu == nil {
		return nil
	}
	return r.fill(".nav__list", "nav-menu", nav.Menu)
}
