package utils

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ReplyToHTML renderiza uma resposta do chatbot em HTML: URLs viram links que
// abrem em nova aba e HTML bruto da resposta é descartado.
func ReplyToHTML(reply string) string {
	if strings.TrimSpace(reply) == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Autolink | parser.HardLineBreak)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.NoopenerLinks | html.SkipHTML,
	})

	out := markdown.ToHTML([]byte(reply), p, renderer)
	return strings.TrimSpace(string(out))
}
