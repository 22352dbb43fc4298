package service

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// NotesRenderer turns product notes written in Markdown into safe HTML
type NotesRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewNotesRenderer creates a NotesRenderer
func NewNotesRenderer() *NotesRenderer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return &NotesRenderer{
		md:     goldmark.New(),
		policy: policy,
	}
}

// Render converts notes to sanitized HTML. Markdown errors fall back to escaped text.
func (n *NotesRenderer) Render(notes string) template.HTML {
	if notes == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := n.md.Convert([]byte(notes), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(notes))
	}
	return template.HTML(n.policy.SanitizeBytes(buf.Bytes()))
}
