package render

import (
	"github.com/ziadkadry99/folio/internal/content"
)

// UpdateMetaTags sets the document title, the description, and the Open
// Graph and Twitter card tags already present in the shell.
func (r *Renderer) UpdateMetaTags(meta *content.Meta) error {
	if meta == nil {
		return nil
	}

	r.setTitle(meta.Title)
	r.setMeta(`meta[name="description"]`, meta.Description)

	openGraph := []struct {
		property string
		value    content.Text
	}{
		{"og:url", meta.URL},
		{"og:title", meta.Title},
		{"og:description", meta.Description},
		{"og:image", meta.Image},
	}
	for _, tag := range openGraph {
		r.setMeta(`meta[property="`+tag.property+`"]`, tag.value)
	}

	twitter := []struct {
		name  string
		value content.Text
	}{
		{"twitter:title", meta.Title},
		{"twitter:description", meta.Description},
		{"twitter:image", meta.Image},
	}
	for _, tag := range twitter {
		r.setMeta(`meta[name="`+tag.name+`"]`, tag.value)
	}
	return nil
}

// setTitle assigns the document title, creating <title> in <head> if the
// shell has none.
func (r *Renderer) setTitle(title content.Text) {
	if r.first("title") == nil {
		head := r.first("head")
		if head == nil {
			return
		}
		head.AppendHtml("<title></title>")
	}
	r.setText("title", title)
}

func (r *Renderer) setMeta(selector string, value content.Text) {
	if tag := r.first(selector); tag != nil {
		tag.SetAttr("content", string(value))
	}
}
