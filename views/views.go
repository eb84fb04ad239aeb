// Package views contains the tool-owned pages rendered when the
// previewed site itself cannot answer: the 404 and server-error pages.
// Components are plain templ.ComponentFunc implementations so the site
// being previewed stays the single source of real markup.
package views

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the preview 404 page.
func NotFound(siteTitle string) templ.Component {
	return statusPage(siteTitle, "404", "Page not found",
		"This page does not exist in the site directory being previewed.")
}

// ServerError renders the preview 500 page.
func ServerError(siteTitle string) templ.Component {
	return statusPage(siteTitle, "500", "Something went wrong",
		"The preview server hit an unexpected error. Check the terminal for details.")
}

func statusPage(siteTitle, code, heading, detail string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%[1]s — %[2]s</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; line-height: 1.6; }
.wrap { max-width: 40rem; margin: 15vh auto 0; padding: 2rem; text-align: center; }
.code { font-size: 4rem; font-weight: 700; background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); -webkit-background-clip: text; background-clip: text; color: transparent; }
a { color: #667eea; }
</style>
</head>
<body>
<div class="wrap">
<div class="code">%[1]s</div>
<h1>%[3]s</h1>
<p>%[4]s</p>
<p><a href="/">Back to the index page</a></p>
</div>
</body>
</html>
`,
			html.EscapeString(code),
			html.EscapeString(siteTitle),
			html.EscapeString(heading),
			html.EscapeString(detail),
		)
		return err
	})
}
