package render

import (
	"bytes"
	"html/template"

	"github.com/ziadkadry99/folio/internal/content"
)

// fragmentTemplates holds the markup injected into each region. Values are
// escaped by html/template for the context they land in: element text,
// attribute values, URLs, and the JS string literals of inline handlers.
const fragmentTemplates = `
{{define "nav-menu"}}{{range .}}
<li class="nav__item">
  <a href="#{{.ID}}" class="nav__link">
    <i class="uil {{.Icon}} nav__icon"></i>{{.Text}}
  </a>
</li>{{end}}
{{end}}

{{define "home-social"}}{{range .}}
<a href="{{.URL}}" target="_blank" class="home__social-icon">
  <i class="uil {{.Icon}}"></i>
</a>{{end}}
{{end}}

{{define "about-stats"}}{{range .}}
<div>
  <span class="about__info-title">{{.Value}}</span>
  <span class="about__info-name">{{.Label}}</span>
</div>{{end}}
{{end}}

{{define "about-contact"}}
<h3 class="contact__title">{{.Title}}</h3>
<div class="contact__information">{{range .Details}}
  <div class="contact__information">
    <i class="uil {{.Icon}} contact__icon"></i>
    <div>
      <h3 class="contact__title">{{.Title}}</h3>
      <span class="contact__subtitle">{{.Value}}</span>
    </div>
  </div>{{end}}
</div>
{{end}}

{{define "skills-columns"}}{{range .}}
<div class="skills__columns">{{range .}}
  <div class="skills__content">
    <div class="skills__header" onclick="toggleSkillsPopup('{{.ID}}')">
      <i class="uil {{.Icon}} skills__icon"></i>
      <div>
        <h1 class="skills__titles">{{.Title}}</h1>
      </div>
      <i class="uil uil-angle-down skills__arrow"></i>
    </div>
  </div>{{end}}
</div>{{end}}
{{end}}

{{define "skills-popups"}}{{range .}}
<div id="{{.ID}}" class="skills__popup">
  <div class="skills__popup-content">
    <span class="skills__popup-close" onclick="closeSkillsPopup('{{.ID}}')">&times;</span>
    <h3 class="skills__popup-title">{{.Title}}</h3>
    <ul class="skills__popup-list">{{range .Skills}}
      <li><i class="uil {{.Icon}}"></i> {{.Name}}</li>{{end}}
    </ul>
  </div>
</div>{{end}}
{{end}}

{{define "education"}}{{range .}}
<div class="qualification__data">
  <div>
    <h3 class="qualification__title">{{.Title}}</h3>
    <span class="qualification__subtitle">{{.Subtitle}}</span>
    <div class="qualification__calendar">
      <i class="uil uil-calendar-alt"></i>
      {{.Period}}
    </div>
    <div class="qualification__calendar">
      <i class="uil uil-award"></i>
      {{.Grade}}
    </div>
  </div>
  <div>
    <span class="qualification__rounder"></span>
    <span class="qualification__line"></span>
  </div>
</div>{{end}}
{{end}}

{{define "bullets"}}{{range $i, $line := .}}{{if $i}}<br>{{end}}• {{$line}}{{end}}{{end}}

{{define "work"}}{{range .}}
<div class="qualification__data">
  <div>
    <h3 class="qualification__title" onclick="openWorkModal('{{.ID}}')">{{.Title}}</h3>
    <span class="qualification__subtitle">{{.Subtitle}}</span>
    <div class="qualification__calendar">
      <i class="uil uil-calendar-alt"></i>
      {{.Period}}
    </div>
    <p class="qualification__description">
      {{template "bullets" .Description}}
    </p>
  </div>
  <div>
    <span class="qualification__rounder"></span>
    <span class="qualification__line"></span>
  </div>
</div>{{end}}
{{end}}

{{define "details"}}{{if .}}
<p>{{.Overview}}</p>

<h4>Key Responsibilities</h4>
<ul>{{range .Responsibilities}}
  <li>{{.}}</li>{{end}}
</ul>

<h4>Technologies Used</h4>
<ul>{{range .Technologies}}
  <li>{{.}}</li>{{end}}
</ul>{{end}}
{{end}}

{{define "work-modals"}}{{range .}}
<div id="{{.ID}}" class="work__modal">
  <div class="work__modal-content">
    <span class="work__modal-close" onclick="closeWorkModal('{{.ID}}')">&times;</span>
    <h3 class="work__modal-title">{{.Title}} - {{.Subtitle}}</h3>
    <div class="work__modal-description">
      <h4>Role Overview</h4>
      {{template "details" .Details}}
    </div>
  </div>
</div>{{end}}
{{end}}

{{define "projects"}}{{range .}}
<div class="portfolio__content">
  <img src="{{.Image}}" alt="" class="portfolio__img">
  <div class="portfolio__data">
    <h3 class="portfolio__title" onclick="openProjectModal('{{.ID}}')">{{.Title}}</h3>
    <p class="portfolio__description">
      {{template "bullets" .Description}}
    </p>
    <a href="{{.GitHub}}" class="button button--flex button--small portfolio__button">
      View on GitHub
      <i class="uil uil-arrow-right button__icon"></i>
    </a>
  </div>
</div>{{end}}
{{end}}

{{define "project-modals"}}{{range .}}
<div id="{{.ID}}" class="project__modal">
  <div class="project__modal-content">
    <span class="project__modal-close" onclick="closeProjectModal('{{.ID}}')">&times;</span>
    <h3 class="project__modal-title">{{.Title}}</h3>
    <div class="project__modal-description">
      <h4>Project Overview</h4>
      {{template "details" .Details}}
    </div>
  </div>
</div>{{end}}
{{end}}

{{define "resume-buttons"}}{{range .}}
<a href="{{.Link}}" class="button button--flex resume__button"{{if .IsDownload}} download{{end}}>
  <i class="uil {{.Icon}} resume__icon"></i>
  {{.Text}}
</a>{{end}}
{{end}}

{{define "resume-info"}}{{range .}}
<div class="resume__info-item">
  <i class="uil {{.Icon}} resume__info-icon"></i>
  <span>{{.Text}}</span>
</div>{{end}}
{{end}}

{{define "footer-links"}}{{range .}}
<li>
  <a href="{{.URL}}" class="footer__link">{{.Text}}</a>
</li>{{end}}
{{end}}

{{define "footer-social"}}{{range .}}
<a href="{{.URL}}" target="_blank" class="footer__social">
  <i class="uil {{.Icon}}"></i>
</a>{{end}}
{{end}}
`

var fragments = template.Must(template.New("fragments").Parse(fragmentTemplates))

func executeFragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// skillColumns groups categories two per column, keeping their order.
func skillColumns(categories []content.SkillCategory) [][]content.SkillCategory {
	var columns [][]content.SkillCategory
	for i := 0; i < len(categories); i += 2 {
		end := i + 2
		if end > len(categories) {
			end = len(categories)
		}
		columns = append(columns, categories[i:end])
	}
	return columns
}
