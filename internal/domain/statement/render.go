package statement

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"theater_billing/internal/domain/entities"
)

// Renderer turns a computed summary into a statement body.
type Renderer interface {
	Render(s Summary) (string, error)
	ContentType() string
}

// TextRenderer produces the plain-text statement.
type TextRenderer struct{}

func (TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (TextRenderer) Render(s Summary) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", s.Customer)
	for _, line := range s.Lines {
		fmt.Fprintf(&b, "  %s: %s (%d seats)\n", line.PlayName, s.usd(line.Amount), line.Audience)
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", s.usd(s.TotalAmount))
	fmt.Fprintf(&b, "You earned %d credits\n", s.TotalCredits)
	return b.String(), nil
}

const statementHTMLTemplate = `<h1>Statement for {{.Customer}}</h1>
<table>
<tr><th>play</th><th>seats</th><th>cost</th></tr>
{{- range .Lines}}
<tr><td>{{.PlayName}}</td><td>{{.Audience}}</td><td>{{usd .Amount}}</td></tr>
{{- end}}
</table>
<p>Amount owed is <em>{{usd .TotalAmount}}</em></p>
<p>You earned <em>{{.TotalCredits}}</em> credits</p>
`

// statementHTML is parsed once and never executed directly; each render clones it and
// binds usd to the summary's percent factor.
var statementHTML = template.Must(template.New("statement").
	Funcs(template.FuncMap{"usd": func(int64) string { return "" }}).
	Parse(statementHTMLTemplate))

// HTMLRenderer produces an HTML fragment of the statement.
type HTMLRenderer struct{}

func (HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (HTMLRenderer) Render(s Summary) (string, error) {
	tpl, err := statementHTML.Clone()
	if err != nil {
		return "", err
	}
	tpl.Funcs(template.FuncMap{"usd": s.usd})

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RendererFor returns the renderer for a statement format. An empty format means text.
func RendererFor(format entities.StatementFormat) (Renderer, error) {
	switch format {
	case "", entities.StatementFormatText:
		return TextRenderer{}, nil
	case entities.StatementFormatHTML:
		return HTMLRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
