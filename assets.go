package main

import (
	"embed"
	"image"
	_ "image/jpeg"
	"log"
	"sync"

	"github.com/go-drift/drift/pkg/svg"
)

//go:generate go run ./cmd/genassets

//go:embed assets/images assets/icons
var assetFS embed.FS

var (
	lakeOnce  sync.Once
	lakeImage image.Image
)

// loadLakeImage decodes the embedded cover photo once and reuses it
// across rebuilds.
func loadLakeImage() image.Image {
	lakeOnce.Do(func() {
		lakeImage = loadImageAsset("images/lake.jpg")
	})
	return lakeImage
}

// loadImageAsset decodes an embedded raster asset. On failure it logs
// and returns nil, which Image renders as an empty box.
func loadImageAsset(name string) image.Image {
	f, err := assetFS.Open("assets/" + name)
	if err != nil {
		log.Printf("asset %s: %v", name, err)
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("asset %s: %v", name, err)
		return nil
	}
	return img
}

// iconCache holds the parsed button SVGs for the process lifetime.
var iconCache = svg.NewIconCache()

// loadIcon returns the named embedded SVG. It returns nil on platforms
// without SVG support, which SvgImage renders as an empty box.
func loadIcon(name string) *svg.Icon {
	icon, err := iconCache.Get(name, func() (*svg.Icon, error) {
		data, err := assetFS.ReadFile("assets/icons/" + name)
		if err != nil {
			return nil, err
		}
		return svg.LoadBytes(data)
	})
	if err != nil {
		return nil
	}
	return icon
}
