package main

import (
	"image"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/svg"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// sectionInset is the uniform padding around the title and text sections.
const sectionInset = 32

// ratingColor tints the star next to the rating count. The star is part
// of the section's fixed iconography; only the count varies.
var ratingColor = graphics.RGB(0xF4, 0x43, 0x36)

// ImageSection renders the cover photo in a fixed 600x240 box. The
// source is scaled to fill the box and cropped, never letterboxed.
type ImageSection struct {
	Source        image.Image
	SemanticLabel string
}

func (s ImageSection) CreateElement() core.Element {
	return core.NewStatelessElement(s, nil)
}

func (s ImageSection) Key() any {
	return nil
}

func (s ImageSection) Build(ctx core.BuildContext) core.Widget {
	return widgets.Image{
		Source:        s.Source,
		Width:         600,
		Height:        240,
		Fit:           widgets.ImageFitCover,
		SemanticLabel: s.SemanticLabel,
	}
}

// TitleSection pairs the destination name and location with a rating
// badge. The name and location stack on the left and take all spare
// width, pushing the red star and the rating count to the right edge.
type TitleSection struct {
	Name     string
	Location string
	Rating   string
}

func (t TitleSection) CreateElement() core.Element {
	return core.NewStatelessElement(t, nil)
}

func (t TitleSection) Key() any {
	return nil
}

func (t TitleSection) Build(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	nameStyle := textTheme.BodyMedium
	nameStyle.FontWeight = graphics.FontWeightBold

	locationStyle := textTheme.BodyMedium
	locationStyle.Color = colors.OnSurfaceVariant

	star := theme.IconOf(ctx, "★")
	star.Color = ratingColor

	return widgets.Padding{
		Padding: layout.EdgeInsetsAll(sectionInset),
		Child: widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMax,
			widgets.Expanded{
				Child: widgets.ColumnOf(
					widgets.MainAxisAlignmentStart,
					widgets.CrossAxisAlignmentStart,
					widgets.MainAxisSizeMin,
					widgets.Padding{
						Padding: layout.EdgeInsetsOnly(0, 0, 0, 8),
						Child:   widgets.Text{Content: t.Name, Style: nameStyle},
					},
					widgets.Text{Content: t.Location, Style: locationStyle},
				),
			},
			star,
			widgets.Text{Content: t.Rating, Style: textTheme.BodyMedium},
		),
	}
}

// ButtonSection spreads the three actions evenly across the row. Every
// button picks up the ambient theme's primary color at build time.
type ButtonSection struct{}

func (b ButtonSection) CreateElement() core.Element {
	return core.NewStatelessElement(b, nil)
}

func (b ButtonSection) Key() any {
	return nil
}

func (b ButtonSection) Build(ctx core.BuildContext) core.Widget {
	colors := theme.ColorsOf(ctx)

	return widgets.RowOf(
		widgets.MainAxisAlignmentSpaceEvenly,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMax,
		ButtonWithText{Color: colors.Primary, Icon: loadIcon("call.svg"), Label: "CALL"},
		ButtonWithText{Color: colors.Primary, Icon: loadIcon("navigation.svg"), Label: "ROUTE"},
		ButtonWithText{Color: colors.Primary, Icon: loadIcon("share.svg"), Label: "SHARE"},
	)
}

// TextSection renders a paragraph with the uniform section padding.
// The text wraps at the available width and is never truncated.
type TextSection struct {
	Description string
}

func (t TextSection) CreateElement() core.Element {
	return core.NewStatelessElement(t, nil)
}

func (t TextSection) Key() any {
	return nil
}

func (t TextSection) Build(ctx core.BuildContext) core.Widget {
	_, _, textTheme := theme.UseTheme(ctx)

	return widgets.Padding{
		Padding: layout.EdgeInsetsAll(sectionInset),
		Child: widgets.Text{
			Content: t.Description,
			Style:   textTheme.BodyMedium,
			Wrap:    true,
		},
	}
}

// ButtonWithText stacks an icon above a small caption, both tinted with
// the caller's color. The column hugs its content so rows can place
// buttons without stretching them.
type ButtonWithText struct {
	Color graphics.Color
	Icon  *svg.Icon
	Label string
}

func (b ButtonWithText) CreateElement() core.Element {
	return core.NewStatelessElement(b, nil)
}

func (b ButtonWithText) Key() any {
	return nil
}

func (b ButtonWithText) Build(ctx core.BuildContext) core.Widget {
	return widgets.ColumnOf(
		widgets.MainAxisAlignmentCenter,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMin,
		widgets.SvgImage{
			Source:               b.Icon,
			Width:                24,
			Height:               24,
			TintColor:            b.Color,
			ExcludeFromSemantics: true,
		},
		widgets.Padding{
			Padding: layout.EdgeInsetsOnly(0, 8, 0, 0),
			Child: widgets.Text{
				Content: b.Label,
				Style: graphics.TextStyle{
					Color:      b.Color,
					FontSize:   12,
					FontWeight: graphics.FontWeightNormal,
				},
			},
		},
	)
}
