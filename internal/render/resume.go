package render

import (
	"errors"

	"github.com/ziadkadry99/folio/internal/content"
)

// RenderResume fills the resume buttons and the info list.
func (r *Renderer) RenderResume(resume *content.Resume) error {
	if resume == nil {
		return nil
	}
	r.setText(".resume__content .section__title", resume.Title)
	r.setText(".resume__content .section__subtitle", resume.Subtitle)

	var errs []error
	if resume.Buttons != nil {
		errs = append(errs, r.fill(".resume__buttons", "resume-buttons", resume.Buttons))
	}
	if resume.Info != nil {
		errs = append(errs, r.fill(".resume__info", "resume-info", resume.Info))
	}
	return errors.Join(errs...)
}
