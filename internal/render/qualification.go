package render

import (
	"github.com/ziadkadry99/folio/internal/content"
)

// RenderQualifications fills the education and work timelines. Each job
// also gets a detail modal appended to the body.
func (r *Renderer) RenderQualifications(q *content.Qualification) error {
	if q == nil {
		return nil
	}
	r.setText("#qualification .section__title", q.Title)
	r.setText("#qualification .section__subtitle", q.Subtitle)

	if q.Education != nil {
		if err := r.fill("#education", "education", q.Education); err != nil {
			return err
		}
	}

	work := r.first("#work")
	if work == nil || q.Work == nil {
		return nil
	}
	if err := setFragment(work, "work", q.Work); err != nil {
		return err
	}
	return r.appendToBody("work-modals", q.Work)
}
