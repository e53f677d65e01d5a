package render

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ziadkadry99/folio/internal/content"
)

// loadFixture parses testdata/portfolio/content.json from the project root.
func loadFixture(t *testing.T) *content.Content {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	path := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "portfolio", "content.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	c, err := content.Parse(data)
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return c
}

// renderDoc renders c into shell and re-parses the output for inspection.
func renderDoc(t *testing.T, shell string, c *content.Content, opts ...Option) *goquery.Document {
	t.Helper()
	out, err := Render([]byte(shell), c, opts...)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("re-parsing output: %v", err)
	}
	return doc
}

func text(doc *goquery.Document, selector string) string {
	return doc.Find(selector).First().Text()
}

func attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return v
}

func trimmedTexts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRenderMetaTags(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	checks := []struct {
		got, want string
	}{
		{text(doc, "title"), string(c.Meta.Title)},
		{attr(doc, `meta[name="description"]`, "content"), string(c.Meta.Description)},
		{attr(doc, `meta[property="og:url"]`, "content"), string(c.Meta.URL)},
		{attr(doc, `meta[property="og:title"]`, "content"), string(c.Meta.Title)},
		{attr(doc, `meta[property="og:description"]`, "content"), string(c.Meta.Description)},
		{attr(doc, `meta[property="og:image"]`, "content"), string(c.Meta.Image)},
		{attr(doc, `meta[name="twitter:title"]`, "content"), string(c.Meta.Title)},
		{attr(doc, `meta[name="twitter:description"]`, "content"), string(c.Meta.Description)},
		{attr(doc, `meta[name="twitter:image"]`, "content"), string(c.Meta.Image)},
		{attr(doc, `meta[name="twitter:card"]`, "content"), "summary_large_image"},
	}
	for i, ck := range checks {
		if ck.got != ck.want {
			t.Errorf("check %d: got %q, want %q", i, ck.got, ck.want)
		}
	}
	if n := doc.Find("title").Length(); n != 1 {
		t.Errorf("title elements = %d, want 1", n)
	}
}

func TestRenderMetaCreatesTitle(t *testing.T) {
	shell := `<html><head></head><body></body></html>`
	doc := renderDoc(t, shell, &content.Content{Meta: &content.Meta{Title: "Only Title"}})
	if got := text(doc, "head title"); got != "Only Title" {
		t.Errorf("title = %q, want %q", got, "Only Title")
	}
}

func TestRenderNavigation(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, ".nav__logo"); got != "Jordan" {
		t.Errorf("logo = %q, want Jordan", got)
	}
	items := doc.Find(".nav__list .nav__item")
	if items.Length() != len(c.Navigation.Menu) {
		t.Fatalf("menu items = %d, want %d", items.Length(), len(c.Navigation.Menu))
	}
	want := []string{"Home", "About", "Skills", "Portfolio"}
	if got := trimmedTexts(doc.Find(".nav__list .nav__link")); !equalStrings(got, want) {
		t.Errorf("menu texts = %v, want %v", got, want)
	}
	if got := attr(doc, ".nav__link", "href"); got != "#home" {
		t.Errorf("first href = %q, want #home", got)
	}
	if got := attr(doc, ".nav__link i", "class"); got != "uil uil-estate nav__icon" {
		t.Errorf("icon class = %q", got)
	}
}

func TestRenderHome(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, ".home__title"); got != string(c.Home.Title) {
		t.Errorf("title = %q", got)
	}
	if got := text(doc, ".home__subtitle"); got != string(c.Home.Subtitle) {
		t.Errorf("subtitle = %q", got)
	}
	if got := text(doc, ".home__description"); got != string(c.Home.Description) {
		t.Errorf("description = %q, want %q", got, c.Home.Description)
	}

	icons := doc.Find(".home__social a.home__social-icon")
	if icons.Length() != 2 {
		t.Fatalf("social icons = %d, want 2", icons.Length())
	}
	if got := attr(doc, ".home__social-icon", "href"); got != "https://github.com/jordanlee" {
		t.Errorf("social href = %q", got)
	}
	if got := attr(doc, ".home__social-icon", "target"); got != "_blank" {
		t.Errorf("social target = %q", got)
	}
}

func TestRenderAbout(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, ".about__data .section__title"); got != "About Me" {
		t.Errorf("title = %q", got)
	}
	if got := text(doc, ".about__data .section__subtitle"); got != "My introduction" {
		t.Errorf("subtitle = %q", got)
	}
	if got := text(doc, ".about__description"); got != string(c.About.Description) {
		t.Errorf("description = %q", got)
	}

	values := trimmedTexts(doc.Find(".about__info .about__info-title"))
	if want := []string{"08+", "20", "03"}; !equalStrings(values, want) {
		t.Errorf("stat values = %v, want %v", values, want)
	}
	labels := trimmedTexts(doc.Find(".about__info .about__info-name"))
	if want := []string{"Years experience", "Completed projects", "Companies worked"}; !equalStrings(labels, want) {
		t.Errorf("stat labels = %v, want %v", labels, want)
	}

	if got := text(doc, ".about__contact > .contact__title"); got != "Contact" {
		t.Errorf("contact title = %q", got)
	}
	details := trimmedTexts(doc.Find(".about__contact .contact__subtitle"))
	if want := []string{"hello@jordanlee.dev", "Lisbon, Portugal"}; !equalStrings(details, want) {
		t.Errorf("contact details = %v, want %v", details, want)
	}
}

func TestRenderSkills(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, "#skills .section__title"); got != "Skills" {
		t.Errorf("title = %q", got)
	}
	if got := text(doc, "#skills .section__subtitle"); got != "My technical level" {
		t.Errorf("subtitle = %q", got)
	}

	columns := doc.Find(".skills__container .skills__columns")
	if columns.Length() != 2 {
		t.Fatalf("columns = %d, want 2", columns.Length())
	}
	if n := columns.Eq(0).Find(".skills__content").Length(); n != 2 {
		t.Errorf("first column categories = %d, want 2", n)
	}
	if n := columns.Eq(1).Find(".skills__content").Length(); n != 1 {
		t.Errorf("second column categories = %d, want 1", n)
	}
	if got := attr(doc, ".skills__header", "onclick"); got != "toggleSkillsPopup('backend')" {
		t.Errorf("header onclick = %q", got)
	}

	popups := doc.Find("body > div > .skills__popup")
	if popups.Length() != 3 {
		t.Fatalf("popups = %d, want 3", popups.Length())
	}
	if got := trimmedTexts(doc.Find("#backend .skills__popup-list li")); !equalStrings(got, []string{"PostgreSQL", "Kubernetes"}) {
		t.Errorf("backend skills = %v", got)
	}
	if got := attr(doc, "#backend .skills__popup-close", "onclick"); got != "closeSkillsPopup('backend')" {
		t.Errorf("close onclick = %q", got)
	}
}

func TestRenderQualifications(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, "#qualification .section__title"); got != "Qualification" {
		t.Errorf("title = %q", got)
	}
	if got := text(doc, "#education .qualification__title"); got != "Computer Engineering" {
		t.Errorf("education title = %q", got)
	}
	if got := strings.TrimSpace(doc.Find("#education .qualification__calendar").Eq(1).Text()); got != "17/20" {
		t.Errorf("grade = %q", got)
	}

	if got := attr(doc, "#work .qualification__title", "onclick"); got != "openWorkModal('work-acme')" {
		t.Errorf("work onclick = %q", got)
	}
	desc := doc.Find("#work .qualification__description")
	if got := strings.TrimSpace(desc.Text()); got != "• Led the storage team• Cut p99 latency in half" {
		t.Errorf("work description = %q", got)
	}
	if n := desc.Find("br").Length(); n != 1 {
		t.Errorf("description breaks = %d, want 1", n)
	}

	modal := doc.Find("body > div > #work-acme.work__modal")
	if modal.Length() != 1 {
		t.Fatalf("work modals = %d, want 1", modal.Length())
	}
	if got := strings.TrimSpace(modal.Find(".work__modal-title").Text()); got != "Senior Engineer - Acme Corp" {
		t.Errorf("modal title = %q", got)
	}
	if got := trimmedTexts(modal.Find("ul").Eq(1).Find("li")); !equalStrings(got, []string{"Go", "gRPC"}) {
		t.Errorf("technologies = %v", got)
	}
}

func TestRenderPortfolio(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, "#portfolio .section__subtitle"); got != "Most recent work" {
		t.Errorf("subtitle = %q", got)
	}
	if got := attr(doc, ".portfolio__img", "src"); got != "assets/img/queue.png" {
		t.Errorf("image src = %q", got)
	}
	if got := attr(doc, ".portfolio__button", "href"); got != "https://github.com/jordanlee/queue" {
		t.Errorf("github href = %q", got)
	}
	if got := attr(doc, ".portfolio__title", "onclick"); got != "openProjectModal('project-queue')" {
		t.Errorf("title onclick = %q", got)
	}
	if got := strings.TrimSpace(text(doc, "#project-queue .project__modal-title")); got != "Durable Queue" {
		t.Errorf("modal title = %q", got)
	}
	if got := strings.TrimSpace(text(doc, "#project-queue .project__modal-description p")); got != "A small durable queue for edge devices." {
		t.Errorf("modal overview = %q", got)
	}
}

func TestRenderResume(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, ".resume__content .section__title"); got != "Resume" {
		t.Errorf("title = %q", got)
	}
	buttons := doc.Find(".resume__buttons .resume__button")
	if buttons.Length() != 2 {
		t.Fatalf("buttons = %d, want 2", buttons.Length())
	}
	if _, ok := buttons.Eq(0).Attr("download"); !ok {
		t.Error("download button should carry the download attribute")
	}
	if _, ok := buttons.Eq(1).Attr("download"); ok {
		t.Error("view button should not carry the download attribute")
	}
	if got := strings.TrimSpace(buttons.Eq(1).Text()); got != "View CV" {
		t.Errorf("button text = %q", got)
	}
	if got := text(doc, ".resume__info .resume__info-item span"); got != "Updated March 2026" {
		t.Errorf("info text = %q", got)
	}
}

func TestRenderFooter(t *testing.T) {
	c := loadFixture(t)
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, ".footer__title"); got != "Jordan Lee" {
		t.Errorf("name = %q", got)
	}
	if got := text(doc, ".footer__subtitle"); got != "Backend Engineer" {
		t.Errorf("title = %q", got)
	}
	if got := trimmedTexts(doc.Find(".footer__links .footer__link")); !equalStrings(got, []string{"About", "Portfolio"}) {
		t.Errorf("links = %v", got)
	}
	if n := doc.Find(".footer__socials .footer__social").Length(); n != 1 {
		t.Errorf("socials = %d, want 1", n)
	}
	if got := text(doc, ".footer__copy"); got != "© 2026 Jordan Lee. All rights reserved" {
		t.Errorf("copyright = %q", got)
	}
}

func TestInitializeNilContentLeavesShellUntouched(t *testing.T) {
	r, err := NewRenderer(strings.NewReader(DefaultShell))
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	before, err := r.HTML()
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	if err := r.Initialize(nil); err != nil {
		t.Fatalf("Initialize(nil) error: %v", err)
	}
	after, err := r.HTML()
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	if before != after {
		t.Error("Initialize(nil) mutated the document")
	}
	if strings.Contains(after, BehaviorScriptPath) {
		t.Error("behavior script should not be injected without content")
	}
}

func TestMissingSectionLeavesRegionUntouched(t *testing.T) {
	untouched := renderDoc(t, DefaultShell, &content.Content{})
	partial := renderDoc(t, DefaultShell, &content.Content{
		Home: &content.Home{Title: "Only home"},
	})

	for _, selector := range []string{"header", "#about", "#skills", "#qualification", "#portfolio", "#resume", "footer", "head"} {
		want, _ := goquery.OuterHtml(untouched.Find(selector).First())
		got, _ := goquery.OuterHtml(partial.Find(selector).First())
		if got != want {
			t.Errorf("region %s changed without its section", selector)
		}
	}
	if got := text(partial, ".home__title"); got != "Only home" {
		t.Errorf("home title = %q", got)
	}
	if n := partial.Find("body > div > .skills__popup").Length(); n != 0 {
		t.Errorf("popups appended without skills: %d", n)
	}
}

func TestMissingTargetNodeIsSkipped(t *testing.T) {
	shell := `<html><head></head><body><a class="nav__logo">old</a></body></html>`
	c := loadFixture(t)
	doc := renderDoc(t, shell, c)

	if got := text(doc, ".nav__logo"); got != "Jordan" {
		t.Errorf("logo = %q", got)
	}
	if n := doc.Find(".skills__popup").Length(); n != 0 {
		t.Errorf("popups = %d, want 0 when .skills__container is absent", n)
	}
	if n := doc.Find(".work__modal, .project__modal").Length(); n != 0 {
		t.Errorf("modals = %d, want 0 when their containers are absent", n)
	}
}

func TestAbsentListKeepsRegionEmptyListClearsIt(t *testing.T) {
	shell := `<html><head></head><body>
<div class="about__data"><div class="about__info"><span class="keep">shell</span></div></div>
</body></html>`

	absent := renderDoc(t, shell, &content.Content{About: &content.About{Title: "t"}})
	if n := absent.Find(".about__info .keep").Length(); n != 1 {
		t.Error("absent stats list should leave the region untouched")
	}

	empty := renderDoc(t, shell, &content.Content{About: &content.About{Stats: []content.Stat{}}})
	if n := empty.Find(".about__info").Children().Length(); n != 0 {
		t.Errorf("empty stats list should clear the region, %d children left", n)
	}
}

func TestRenderEscapesUntrustedFields(t *testing.T) {
	c := &content.Content{
		Home: &content.Home{
			Title:  `<img src=x onerror=alert(1)>`,
			Social: []content.SocialLink{{URL: "javascript:alert(1)", Icon: `x" onmouseover="alert(1)`}},
		},
		Navigation: &content.Navigation{
			Menu: []content.MenuItem{{ID: "a", Icon: "i", Text: `<script>alert(1)</script>`}},
		},
		Skills: &content.Skills{
			Categories: []content.SkillCategory{{ID: `x');alert(1);//`, Title: "T"}},
		},
	}
	doc := renderDoc(t, DefaultShell, c)

	if got := text(doc, ".home__title"); got != string(c.Home.Title) {
		t.Errorf("title text = %q, want literal markup", got)
	}
	if n := doc.Find(".home__title img").Length(); n != 0 {
		t.Error("markup in a text field must not become elements")
	}
	if n := doc.Find(".nav__list script").Length(); n != 0 {
		t.Error("script in a menu item must not become an element")
	}
	if got := attr(doc, ".home__social-icon", "href"); strings.HasPrefix(got, "javascript:") {
		t.Errorf("unsafe URL kept: %q", got)
	}
	if _, ok := doc.Find(".home__social-icon i").Attr("onmouseover"); ok {
		t.Error("attribute injection through an icon class")
	}
	if got := attr(doc, ".skills__header", "onclick"); strings.Contains(got, "');alert(1)") {
		t.Errorf("handler id not escaped: %q", got)
	}
}

func TestBehaviorScriptInjection(t *testing.T) {
	c := loadFixture(t)

	doc := renderDoc(t, DefaultShell, c)
	if n := doc.Find(`script[src="` + BehaviorScriptPath + `"]`).Length(); n != 1 {
		t.Errorf("behavior scripts = %d, want 1", n)
	}

	shell := strings.Replace(DefaultShell, "</body>", `<script src="/`+BehaviorScriptPath+`"></script></body>`, 1)
	doc = renderDoc(t, shell, c)
	if n := doc.Find("script[src]").Length(); n != 1 {
		t.Errorf("scripts = %d, want the shell's own script only", n)
	}

	doc = renderDoc(t, DefaultShell, c, WithBehaviorScript(""))
	if n := doc.Find("script[src]").Length(); n != 0 {
		t.Errorf("scripts = %d, want 0 when disabled", n)
	}
}

func TestLiveReloadClient(t *testing.T) {
	doc := renderDoc(t, DefaultShell, nil, WithLiveReload("/livereload", "rev-1"))
	var client string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), `"/livereload"`) {
			client = s.Text()
		}
	})
	if client == "" {
		t.Fatal("live reload client missing")
	}
	if !strings.Contains(client, `var rendered = "rev-1"`) {
		t.Errorf("client does not carry the rendered revision:\n%s", client)
	}
}

func TestLiveReloadClientEscapesRevision(t *testing.T) {
	doc := renderDoc(t, DefaultShell, nil, WithLiveReload("/livereload", `"</script><b>x`))
	if n := doc.Find("body b").Length(); n != 0 {
		t.Errorf("revision escaped into markup: %d <b> nodes", n)
	}
}

func TestInitializeLogsNothingOnSuccess(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r, err := NewRenderer(strings.NewReader(DefaultShell), WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	if err := r.Initialize(loadFixture(t)); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log entries: %d", logs.Len())
	}

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if n != int64(buf.Len()) || n == 0 {
		t.Errorf("WriteTo() reported %d bytes, wrote %d", n, buf.Len())
	}
}

func TestSkillColumns(t *testing.T) {
	cat := func(id string) content.SkillCategory { return content.SkillCategory{ID: content.Text(id)} }
	tests := []struct {
		in   []content.SkillCategory
		want []int
	}{
		{nil, nil},
		{[]content.SkillCategory{cat("a")}, []int{1}},
		{[]content.SkillCategory{cat("a"), cat("b")}, []int{2}},
		{[]content.SkillCategory{cat("a"), cat("b"), cat("c"), cat("d"), cat("e")}, []int{2, 2, 1}},
	}
	for _, tt := range tests {
		got := skillColumns(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("columns for %d categories = %d, want %d", len(tt.in), len(got), len(tt.want))
			continue
		}
		for i, col := range got {
			if len(col) != tt.want[i] {
				t.Errorf("column %d size = %d, want %d", i, len(col), tt.want[i])
			}
		}
	}
}
