package replay

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// WriteText renders the transcript as plain or ANSI text. Assistant
// messages pass through glamour's markdown renderer unless colorMode is
// "never" or the renderer cannot be built, in which case the raw text is
// printed unchanged.
func WriteText(w io.Writer, res Result, colorMode string) error {
	renderer := markdownRenderer(colorMode)

	for i, msg := range res.Messages {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[assistant %d/%d]\n%s\n", i+1, len(res.Messages), renderMarkdown(renderer, msg)); err != nil {
			return err
		}
	}

	if len(res.Messages) == 0 {
		if _, err := fmt.Fprintln(w, "(no assistant messages extracted)"); err != nil {
			return err
		}
	}
	return nil
}

// markdownRenderer builds a glamour renderer for the color mode, or nil
// for plain text.
func markdownRenderer(colorMode string) *glamour.TermRenderer {
	var opts []glamour.TermRendererOption
	switch colorMode {
	case "never":
		return nil
	case "always":
		opts = append(opts,
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(0),
		)
	default: // "auto": glamour's own TTY detection decides
		opts = append(opts,
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(0),
		)
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil
	}
	return renderer
}

func renderMarkdown(renderer *glamour.TermRenderer, text string) string {
	if renderer == nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}

// htmlPage is the standalone transcript page. Messages arrive already
// converted from markdown.
var htmlPage = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.meta { color: #666; font-size: 0.9rem; }
.message { border-left: 3px solid #888; padding-left: 1rem; margin: 1.5rem 0; }
.completed { color: #2a7; }
pre { background: #f4f4f4; padding: 0.5rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">provider: {{.Provider}} &middot; {{.Lines}} lines &middot; {{len .Messages}} assistant messages
{{- if .Completed}} &middot; <span class="completed">completion detected</span>{{end}}</p>
{{range .Messages}}<div class="message">{{.}}</div>
{{end}}</body>
</html>
`))

type htmlData struct {
	Title     string
	Provider  string
	Lines     int
	Completed bool
	Messages  []template.HTML
}

// WriteHTML renders the transcript as a standalone HTML page, converting
// each assistant message from markdown with goldmark.
func WriteHTML(w io.Writer, res Result, title string) error {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(),
		),
	)

	data := htmlData{
		Title:     title,
		Provider:  res.Provider,
		Lines:     res.Lines,
		Completed: res.Completed,
	}
	for _, msg := range res.Messages {
		var buf bytes.Buffer
		if err := md.Convert([]byte(msg), &buf); err != nil {
			return fmt.Errorf("converting message: %w", err)
		}
		data.Messages = append(data.Messages, template.HTML(buf.String()))
	}

	if err := htmlPage.Execute(w, data); err != nil {
		return fmt.Errorf("rendering transcript: %w", err)
	}
	return nil
}
