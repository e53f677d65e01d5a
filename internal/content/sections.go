package content

// Section names, in the order the renderer applies them.
const (
	SectionMeta          = "meta"
	SectionNavigation    = "navigation"
	SectionHome          = "home"
	SectionAbout         = "about"
	SectionSkills        = "skills"
	SectionQualification = "qualification"
	SectionPortfolio     = "portfolio"
	SectionResume        = "resume"
	SectionFooter        = "footer"
)

// SectionNames lists every top-level key of the document in render order.
var SectionNames = []string{
	SectionMeta,
	SectionNavigation,
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionQualification,
	SectionPortfolio,
	SectionResume,
	SectionFooter,
}

// Section reports whether one top-level key is present.
type Section struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Sections returns the presence report for all sections in render order.
func (c *Content) Sections() []Section {
	out := make([]Section, len(SectionNames))
	for i, name := range SectionNames {
		out[i] = Section{Name: name, Present: c.Has(name)}
	}
	return out
}

// Has reports whether the named section is present. Unknown names are
// never present.
func (c *Content) Has(name string) bool {
	if c == nil {
		return false
	}
	switch name {
	case SectionMeta:
		return c.Meta != nil
	case SectionNavigation:
		return c.Navigation != nil
	case SectionHome:
		return c.Home != nil
	case SectionAbout:
		return c.About != nil
	case SectionSkills:
		return c.Skills != nil
	case SectionQualification:
		return c.Qualification != nil
	case SectionPortfolio:
		return c.Portfolio != nil
	case SectionResume:
		return c.Resume != nil
	case SectionFooter:
		return c.Footer != nil
	}
	return false
}
