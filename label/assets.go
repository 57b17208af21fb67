package label

import "path/filepath"

// Assets resolves font and logo file paths under the assets directory.
// The directory defaults to "assets" next to the binary and can be moved
// with the ASSETS_DIR environment variable (wired in app initialization)
type Assets struct {
	dir string
}

// NewAssets creates an Assets resolver rooted at dir ("assets" when empty)
func NewAssets(dir string) Assets {
	if dir == "" {
		dir = "assets"
	}
	return Assets{dir: dir}
}

// FontRegular returns the path of the regular label font
func (a Assets) FontRegular() string {
	return filepath.Join(a.dir, "fonts", "calibri.ttf")
}

// FontBold returns the path of the bold label font
func (a Assets) FontBold() string {
	return filepath.Join(a.dir, "fonts", "calibri_bold.ttf")
}

// Logo returns the path of a regulatory logo image by file name
func (a Assets) Logo(name string) string {
	return filepath.Join(a.dir, name)
}
