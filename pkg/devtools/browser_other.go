//go:build !windows

package devtools

var executables = [...]string{
	// Linux.
	"google-chrome-stable",
	"google-chrome",
	"chromium-browser",
	"chromium",

	// Canary and dev channels.
	"google-chrome-beta",
	"google-chrome-unstable",

	// macOS.
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Google Chrome Canary.app/Contents/MacOS/Google Chrome Canary",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",

	// Microsoft Edge (Chromium-based) on macOS.
	"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
}
