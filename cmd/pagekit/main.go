// Command pagekit calls the JSON API from a terminal. Application and
// transport errors are shown in the same banner the browser pages use.
package main

import (
	"errors"
	"os"

	"github.com/AlexZinkM/pagekit/internal/config"
	"github.com/AlexZinkM/pagekit/internal/console"
	"github.com/AlexZinkM/pagekit/internal/ui"
)

func main() {
	banner := ui.NewBanner(console.NewAlert(os.Stderr))
	if err := config.Init(); err != nil {
		banner.ShowError(err)
		os.Exit(1)
	}
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		// Usage errors have not been shown yet
		if !errors.Is(err, errShown) {
			banner.ShowError(err)
		}
		os.Exit(1)
	}
}
