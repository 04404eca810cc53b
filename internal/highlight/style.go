package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is the theme used when the user doesn't pick one.
// It is always registered.
const DefaultTheme = "plain"

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is,
// fading comments and giving keywords and strings a light touch.
var PlainStyle = chroma.MustNewStyle(DefaultTheme, map[chroma.TokenType]string{
	chroma.Comment:       "italic #777777",
	chroma.Keyword:       "bold",
	chroma.LiteralString: "#3a5e3a",
	chroma.PreWrapper:    "bg:#f5f5f5",
	chroma.Background:    "bg:#f5f5f5",
})

func init() {
	styles.Register(PlainStyle)
}
