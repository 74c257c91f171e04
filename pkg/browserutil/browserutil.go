// Package browserutil opens URLs in the user's default browser on a
// best-effort basis. A failed launch never fails the calling command; the
// caller falls back to printing the URL.
package browserutil

import (
	"io"

	"github.com/pkg/browser"

	"asoctl/pkg/logger"

	"go.uber.org/zap"
)

func init() {
	// Browser launchers occasionally chatter on stdout/stderr; keep command
	// output clean.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Open launches the default browser at url. Returns false when the spawn
// failed and the caller should print the URL instead.
func Open(url string) bool {
	if err := browser.OpenURL(url); err != nil {
		logger.Debug("browser launch failed", zap.String("url", url), zap.Error(err))
		return false
	}
	return true
}
