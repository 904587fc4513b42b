// Command sift filters a coding assistant's event stream for a
// supervising retry loop.
package main

import (
	"os"

	"github.com/tessro/sift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
