// Package report prints table summaries to the console and renders the
// correlation heat map, histogram and box plot.
package report

import (
	"os/exec"
	"runtime"
)

// OpenViewer opens path with the platform's default image viewer.
func OpenViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
