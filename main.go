// Package main is the Drift layout demo: a single static screen that
// composes rows, columns, padding, an image, text, and icon buttons
// into a lakeside destination page. It is the Drift rendition of the
// classic layout tutorial app.
package main

import (
	"github.com/go-drift/drift/pkg/drift"
)

func main() {
	drift.NewApp(App()).Run()
}
