// The starter app is the bare shell the layout demo grows from: the
// title bar and a centered greeting, before any sections exist.
package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/drift"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

const appTitle = "Drift layout demo"

func main() {
	drift.NewApp(App()).Run()
}

// App assembles the root widget for the starter shell.
func App() core.Widget {
	return theme.AppTheme{
		Data:  theme.NewAppThemeData(theme.TargetPlatformMaterial, theme.BrightnessLight),
		Child: StarterScreen{},
	}
}

// StarterScreen shows the title bar and a centered greeting.
type StarterScreen struct{}

func (s StarterScreen) CreateElement() core.Element {
	return core.NewStatelessElement(s, nil)
}

func (s StarterScreen) Key() any {
	return nil
}

func (s StarterScreen) Build(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	titleStyle := textTheme.TitleLarge
	titleStyle.Color = colors.OnPrimary

	return widgets.Container{
		Color: colors.Background,
		Child: widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMax,
			widgets.Container{
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
			},
			widgets.Expanded{
				Child: widgets.Center{
					Child: widgets.Text{Content: "Hello World", Style: textTheme.BodyMedium},
				},
			},
		),
	}
}
