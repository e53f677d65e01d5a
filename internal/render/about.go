package render

import (
	"errors"

	"github.com/ziadkadry99/folio/internal/content"
)

// RenderAbout fills the about text, the stats row, and the contact card.
func (r *Renderer) RenderAbout(about *content.About) error {
	if about == nil {
		return nil
	}
	r.setText(".about__data .section__title", about.Title)
	r.setText(".about__data .section__subtitle", about.Subtitle)
	r.setText(".about__description", about.Description)

	var errs []error
	if about.Stats != nil {
		errs = append(errs, r.fill(".about__info", "about-stats", about.Stats))
	}
	if about.Contact != nil {
		errs = append(errs, r.fill(".about__contact", "about-contact", about.Contact))
	}
	return errors.Join(errs...)
}
