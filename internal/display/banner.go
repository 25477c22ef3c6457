package display

import (
	"fmt"
	"io"

	"github.com/backmassage/assetseq/internal/term"
)

// PrintBanner writes the ASCII art banner, styled magenta when colors are on.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Magenta.Render(`                    _
  __ _ ___ ___  ___| |_ ___  ___  __ _
 / _`+"`"+` / __/ __|/ _ \ __/ __|/ _ \/ _`+"`"+` |
| (_| \__ \__ \  __/ |_\__ \  __/ (_| |
 \__,_|___/___/\___|\__|___/\___|\__, |
                                    |_|`))
}
