package render

import (
	"errors"

	"github.com/ziadkadry99/folio/internal/content"
)

// copyrightPrefix precedes the footer copyright text.
const copyrightPrefix = "© "

// RenderFooter fills the footer name, links, socials, and copyright line.
func (r *Renderer) RenderFooter(footer *content.Footer) error {
	if footer == nil {
		return nil
	}
	r.setText(".footer__title", footer.Name)
	r.setText(".footer__subtitle", footer.Title)

	var errs []error
	if footer.Links != nil {
		errs = append(errs, r.fill(".footer__links", "footer-links", footer.Links))
	}
	if footer.Social != nil {
		errs = append(errs, r.fill(".footer__socials", "footer-social", footer.Social))
	}

	r.setText(".footer__copy", copyrightPrefix+footer.Copyright)
	return errors.Join(errs...)
}
