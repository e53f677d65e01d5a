package render

import "github.com/ziadkadry99/folio/internal/content"

// RenderSkills fills the skills headers, two categories per column, and
// appends one popup per category to the body.
func (r *Renderer) RenderSkills(skills *content.Skills) error {
	if skills == nil {
		return nil
	}
	r.setText("#skills .section__title", skills.Title)
	r.setText("#skills .section__subtitle", skills.Subtitle)

	container := r.first(".skills__container")
	if container == nil || skills.Categories == nil {
		return nil
	}
	if err := setFragment(container, "skills-columns", skillColumns(skills.Categories)); err != nil {
		return err
	}
	return r.appendToBody("skills-popups", skills.Categories)
}
