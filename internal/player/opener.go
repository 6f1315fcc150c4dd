package player

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenExternal hands a URL to the platform's default opener (browser or
// registered media app). Used by the compact layout, where activating a
// tile opens the media outside the client instead of entering the viewer.
func OpenExternal(url string) error {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	if err != nil {
		return fmt.Errorf("opening %s externally: %w", url, err)
	}
	return nil
}
