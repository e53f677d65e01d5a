// Package render fills the regions of a portfolio page shell from a
// content document. Each section is an independent set of DOM mutations
// addressed by fixed selectors; a missing section, target node, or list
// leaves the corresponding region of the shell untouched.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/folio/internal/content"
)

// BehaviorScriptPath is where the modal and popup handlers are served from,
// relative to the page.
const BehaviorScriptPath = "assets/js/folio.js"

// Renderer owns one parsed shell document. It is not safe for concurrent
// use; callers render each page into its own Renderer.
type Renderer struct {
	doc            *goquery.Document
	logger         *zap.Logger
	behaviorScript string
	liveReload     string
	revision       string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for per-section failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBehaviorScript sets the src of the script defining the inline click
// handlers. An empty src disables injection.
func WithBehaviorScript(src string) Option {
	return func(r *Renderer) { r.behaviorScript = src }
}

// WithLiveReload adds a client that reloads the page when the websocket at
// path announces a revision other than the one the page was rendered from.
func WithLiveReload(path, revision string) Option {
	return func(r *Renderer) {
		r.liveReload = path
		r.revision = revision
	}
}

// NewRenderer parses shell into a document ready for Initialize.
func NewRenderer(shell io.Reader, opts ...Option) (*Renderer, error) {
	doc, err := goquery.NewDocumentFromReader(shell)
	if err != nil {
		return nil, fmt.Errorf("parsing page shell: %w", err)
	}
	r := &Renderer{
		doc:            doc,
		logger:         zap.NewNop(),
		behaviorScript: BehaviorScriptPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.liveReload != "" {
		r.injectLiveReload()
	}
	return r, nil
}

// Render is the one-shot form: parse shell, apply c, and serialize.
func Render(shell []byte, c *content.Content, opts ...Option) (string, error) {
	r, err := NewRenderer(bytes.NewReader(shell), opts...)
	if err != nil {
		return "", err
	}
	if err := r.Initialize(c); err != nil {
		return "", err
	}
	return r.HTML()
}

// Initialize applies every section of c in render order. A nil c leaves the
// document unchanged. A failure in one section does not stop the others;
// all failures are returned joined.
func (r *Renderer) Initialize(c *content.Content) error {
	if c == nil {
		return nil
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{content.SectionMeta, func() error { return r.UpdateMetaTags(c.Meta) }},
		{content.SectionNavigation, func() error { return r.RenderNavigation(c.Navigation) }},
		{content.SectionHome, func() error { return r.RenderHome(c.Home) }},
		{content.SectionAbout, func() error { return r.RenderAbout(c.About) }},
		{content.SectionSkills, func() error { return r.RenderSkills(c.Skills) }},
		{content.SectionQualification, func() error { return r.RenderQualifications(c.Qualification) }},
		{content.SectionPortfolio, func() error { return r.RenderPortfolio(c.Portfolio) }},
		{content.SectionResume, func() error { return r.RenderResume(c.Resume) }},
		{content.SectionFooter, func() error { return r.RenderFooter(c.Footer) }},
	}

	var errs []error
	for _, step := range steps {
		if err := step.run(); err != nil {
			r.logger.Error("rendering section failed", zap.String("section", step.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
		}
	}

	r.injectBehaviorScript()
	return errors.Join(errs...)
}

// HTML serializes the document.
func (r *Renderer) HTML() (string, error) {
	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo serializes the document to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := html.Render(cw, r.doc.Get(0)); err != nil {
		return cw.n, fmt.Errorf("serializing page: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// first returns the first node matching selector, or nil when none does.
func (r *Renderer) first(selector string) *goquery.Selection {
	sel := r.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}

// setText replaces the children of the first match with a single text node.
func (r *Renderer) setText(selector string, value content.Text) {
	if sel := r.first(selector); sel != nil {
		sel.SetText(string(value))
	}
}

// setFragment replaces the children of target with the named fragment.
func setFragment(target *goquery.Selection, name string, data any) error {
	frag, err := executeFragment(name, data)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	target.SetHtml(frag)
	return nil
}

// fill renders the named fragment into the first match of selector.
func (r *Renderer) fill(selector, name string, data any) error {
	sel := r.first(selector)
	if sel == nil {
		return nil
	}
	return setFragment(sel, name, data)
}

// appendToBody wraps the named fragment in a div appended to <body>.
func (r *Renderer) appendToBody(name string, data any) error {
	body := r.first("body")
	if body == nil {
		return nil
	}
	frag, err := executeFragment(name, data)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	body.AppendHtml("<div>" + frag + "</div>")
	return nil
}

func (r *Renderer) injectBehaviorScript() {
	if r.behaviorScript == "" {
		return
	}
	present := false
	r.doc.Find("script[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if strings.HasSuffix(src, r.behaviorScript) {
			present = true
			return false
		}
		return true
	})
	if present {
		return
	}
	if body := r.first("body"); body != nil {
		body.AppendHtml(`<script src="` + template.HTMLEscapeString(r.behaviorScript) + `"></script>`)
	}
}

const liveReloadClient = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "%s");
  var rendered = "%s";
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "reload" && msg.revision !== rendered) location.reload();
  };
})();
</script>`

func (r *Renderer) injectLiveReload() {
	if body := r.first("body"); body != nil {
		body.AppendHtml(fmt.Sprintf(liveReloadClient,
			template.JSEscapeString(r.liveReload), template.JSEscapeString(r.revision)))
	}
}
