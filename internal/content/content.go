// Package content models the portfolio content document and loads it from
// a file or an HTTP source.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Content is the JSON document that drives all rendering. Every section is
// optional; a nil section is skipped by the renderer.
type Content struct {
	Meta          *Meta          `json:"meta,omitempty"`
	Navigation    *Navigation    `json:"navigation,omitempty"`
	Home          *Home          `json:"home,omitempty"`
	About         *About         `json:"about,omitempty"`
	Skills        *Skills        `json:"skills,omitempty"`
	Qualification *Qualification `json:"qualification,omitempty"`
	Portfolio     *Portfolio     `json:"portfolio,omitempty"`
	Resume        *Resume        `json:"resume,omitempty"`
	Footer        *Footer        `json:"footer,omitempty"`

	raw []byte
}

// Meta holds the values written into the document head.
type Meta struct {
	Title       Text `json:"title"`
	Description Text `json:"description"`
	URL         Text `json:"url"`
	Image       Text `json:"image"`
}

type Navigation struct {
	Logo Text       `json:"logo"`
	Menu []MenuItem `json:"menu"`
}

type MenuItem struct {
	ID   Text `json:"id"`
	Icon Text `json:"icon"`
	Text Text `json:"text"`
}

// SocialLink is an icon link used by the hero and the footer.
type SocialLink struct {
	URL  Text `json:"url"`
	Icon Text `json:"icon"`
}

type Home struct {
	Title       Text         `json:"title"`
	Subtitle    Text         `json:"subtitle"`
	Description Text         `json:"description"`
	Social      []SocialLink `json:"social"`
}

type About struct {
	Title       Text     `json:"title"`
	Subtitle    Text     `json:"subtitle"`
	Description Text     `json:"description"`
	Stats       []Stat   `json:"stats"`
	Contact     *Contact `json:"contact,omitempty"`
}

type Stat struct {
	Value Text `json:"value"`
	Label Text `json:"label"`
}

type Contact struct {
	Title   Text            `json:"title"`
	Details []ContactDetail `json:"details"`
}

type ContactDetail struct {
	Icon  Text `json:"icon"`
	Title Text `json:"title"`
	Value Text `json:"value"`
}

type Skills struct {
	Title      Text            `json:"title"`
	Subtitle   Text            `json:"subtitle"`
	Categories []SkillCategory `json:"categories"`
}

// SkillCategory is one collapsible skills header and its popup list.
type SkillCategory struct {
	ID     Text    `json:"id"`
	Icon   Text    `json:"icon"`
	Title  Text    `json:"title"`
	Skills []Skill `json:"skills"`
}

type Skill struct {
	Icon Text `json:"icon"`
	Name Text `json:"name"`
}

type Qualification struct {
	Title     Text        `json:"title"`
	Subtitle  Text        `json:"subtitle"`
	Education []Education `json:"education"`
	Work      []Work      `json:"work"`
}

type Education struct {
	Title    Text `json:"title"`
	Subtitle Text `json:"subtitle"`
	Period   Text `json:"period"`
	Grade    Text `json:"grade"`
}

type Work struct {
	ID          Text     `json:"id"`
	Title       Text     `json:"title"`
	Subtitle    Text     `json:"subtitle"`
	Period      Text     `json:"period"`
	Description []Text   `json:"description"`
	Details     *Details `json:"details,omitempty"`
}

// Details is the long-form body shown in a work or project modal.
type Details struct {
	Overview         Text   `json:"overview"`
	Responsibilities []Text `json:"responsibilities"`
	Technologies     []Text `json:"technologies"`
}

type Portfolio struct {
	Title    Text      `json:"title"`
	Subtitle Text      `json:"subtitle"`
	Projects []Project `json:"projects"`
}

type Project struct {
	ID          Text     `json:"id"`
	Image       Text     `json:"image"`
	Title       Text     `json:"title"`
	Description []Text   `json:"description"`
	GitHub      Text     `json:"github"`
	Details     *Details `json:"details,omitempty"`
}

type Resume struct {
	Title    Text           `json:"title"`
	Subtitle Text           `json:"subtitle"`
	Buttons  []ResumeButton `json:"buttons"`
	Info     []ResumeInfo   `json:"info"`
}

// ButtonDownload marks a resume button whose link is downloaded rather
// than navigated to.
const ButtonDownload = "download"

type ResumeButton struct {
	Link Text `json:"link"`
	Type Text `json:"type"`
	Icon Text `json:"icon"`
	Text Text `json:"text"`
}

// IsDownload reports whether the button carries the download attribute.
func (b ResumeButton) IsDownload() bool { return b.Type == ButtonDownload }

type ResumeInfo struct {
	Icon Text `json:"icon"`
	Text Text `json:"text"`
}

type Footer struct {
	Name      Text         `json:"name"`
	Title     Text         `json:"title"`
	Links     []FooterLink `json:"links"`
	Social    []SocialLink `json:"social"`
	Copyright Text         `json:"copyright"`
}

type FooterLink struct {
	URL  Text `json:"url"`
	Text Text `json:"text"`
}

// utf8BOM is dropped from the start of a document before decoding.
var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes a content document. The top level must be a JSON object.
func Parse(data []byte) (*Content, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("content: document must be a JSON object")
	}
	var c Content
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, fmt.Errorf("content: decoding document: %w", err)
	}
	c.raw = append([]byte(nil), trimmed...)
	return &c, nil
}

// Raw returns the document bytes the content was parsed from. Content built
// in code has no raw form and is re-encoded instead.
func (c *Content) Raw() ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("content: nil document")
	}
	if c.raw != nil {
		return c.raw, nil
	}
	return json.Marshal(c)
}
