// Package template implements the plain {{placeholder}} substitution
// used for acknowledgment emails. It is deliberately not text/template:
// admins edit these bodies through the dashboard and an unknown token
// must survive as literal text instead of failing the render.
package template

import "strings"

// Template holds the editable parts of an email.
type Template struct {
	Subject string
	HTML    string
	Text    string
}

// Rendered is a fully substituted message.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Render replaces every literal occurrence of {{key}} in the subject and
// both bodies. Matching is case-sensitive and non-recursive; placeholders
// without a mapping entry are left untouched. No HTML escaping is applied.
func Render(tpl Template, vars map[string]string) Rendered {
	out := Rendered{
		Subject: tpl.Subject,
		HTML:    tpl.HTML,
		Text:    tpl.Text,
	}
	for key, value := range vars {
		placeholder := "{{" + key + "}}"
		out.Subject = strings.ReplaceAll(out.Subject, placeholder, value)
		out.HTML = strings.ReplaceAll(out.HTML, placeholder, value)
		out.Text = strings.ReplaceAll(out.Text, placeholder, value)
	}
	return out
}
