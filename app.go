package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// appTitle is shown in the title bar of the home screen. drift.yaml
// carries the matching launcher name for packaged builds.
const appTitle = "Drift layout demo"

// Content for the one page this app renders. The screen is static, so
// the destination data lives here as constants rather than in a model.
const (
	campName     = "Oeschinen Lake Campground"
	campLocation = "Kandersteg, Switzerland"
	campRating   = "41"

	campDescription = "Lake Oeschinen lies at the foot of the Blüemlisalp " +
		"in the Bernese Alps. Situated 1,578 meters above sea level, it " +
		"is one of the larger Alpine Lakes. A gondola ride from " +
		"Kandersteg, followed by a half-hour walk through pastures and " +
		"pine forest, leads you to the lake, which warms to 20 degrees " +
		"Celsius in the summer. Activities enjoyed here include rowing, " +
		"and riding the summer toboggan run."
)

// App assembles the root widget: a light Material theme wrapped around
// the home screen.
func App() core.Widget {
	return theme.AppTheme{
		Data:  theme.NewAppThemeData(theme.TargetPlatformMaterial, theme.BrightnessLight),
		Child: HomeScreen{},
	}
}

// HomeScreen is the single page of the demo: a title bar above a
// scrollable column holding the cover photo, the title block, the
// action buttons, and the description paragraph.
type HomeScreen struct{}

func (h HomeScreen) CreateElement() core.Element {
	return core.NewStatelessElement(h, nil)
}

func (h HomeScreen) Key() any {
	return nil
}

func (h HomeScreen) Build(ctx core.BuildContext) core.Widget {
	colors := theme.ColorsOf(ctx)

	return widgets.Container{
		Color: colors.Background,
		Child: widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMax,
			titleBar(ctx),
			widgets.Expanded{
				Child: widgets.ScrollView{
					Physics: widgets.BouncingScrollPhysics{},
					Child: widgets.ColumnOf(
						widgets.MainAxisAlignmentStart,
						widgets.CrossAxisAlignmentStart,
						widgets.MainAxisSizeMin,
						ImageSection{
							Source:        loadLakeImage(),
							SemanticLabel: "Lake Oeschinen under the Bernese Alps",
						},
						TitleSection{
							Name:     campName,
							Location: campLocation,
							Rating:   campRating,
						},
						ButtonSection{},
						TextSection{Description: campDescription},
					),
				},
			},
		),
	}
}

// titleBar renders the app title over the primary color, padded to
// clear the status bar.
func titleBar(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	titleStyle := textTheme.TitleLarge
	titleStyle.Color = colors.OnPrimary

	return widgets.Container{
		Color: colors.Primary,
		Child: widgets.Padding{
			Padding: widgets.SafeAreaPadding(ctx).OnlyTop().Add(16),
			Child: widgets.RowOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMax,
				widgets.Text{Content: appTitle, Style: titleStyle},
			),
		},
	}
}
