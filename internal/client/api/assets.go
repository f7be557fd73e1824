package api

import (
	"strings"

	"github.com/markethub/marketcli/internal/common"
)

// AssetURL resolves a picture filename against the static asset base URL.
// An empty filename degrades to the placeholder instead of producing a URL
// that 404s.
func AssetURL(base, filename string) string {
	if filename == "" {
		filename = common.PlaceholderPicture
	}
	return strings.TrimRight(base, "/") + "/" + filename
}
