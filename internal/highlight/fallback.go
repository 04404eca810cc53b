package highlight

import "strings"

// _escaper escapes the characters that are unsafe inside HTML text
// and attribute values.
//
// Replacer scans the input once,
// so the '&' introduced by a replacement is never escaped again.
var _escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Fallback renders content as escaped plain text
// wrapped in a bare pre/code block.
// It is what [Renderer.Render] returns when the engine is unavailable
// or rejects its input.
func Fallback(content string) string {
	var sb strings.Builder
	sb.Grow(len(content) + len("<pre><code></code></pre>"))
	sb.WriteString("<pre><code>")
	_escaper.WriteString(&sb, content)
	sb.WriteString("</code></pre>")
	return sb.String()
}
