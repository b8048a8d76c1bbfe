package main

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/core"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"gopkg.in/yaml.v3"
)

func TestApp_ShowsTitleInTitleBar(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}

	title := tester.Find(drifttest.ByText(appTitle))
	if title.Count() != 1 {
		t.Fatalf("found %d title texts, want 1", title.Count())
	}

	colors := theme.LightColorScheme()
	text := title.Widget().(widgets.Text)
	if text.Style.Color != colors.OnPrimary {
		t.Errorf("title color = %v, want on-primary %v", text.Style.Color, colors.OnPrimary)
	}

	bars := tester.Find(drifttest.Ancestor(
		drifttest.ByText(appTitle),
		drifttest.ByType[widgets.Container](),
	)).All()
	var foundPrimary bool
	for _, el := range bars {
		if el.Widget().(widgets.Container).Color == colors.Primary {
			foundPrimary = true
		}
	}
	if !foundPrimary {
		t.Error("title bar is not painted with the theme primary color")
	}
}

func TestApp_OrdersSectionsInScrollableBody(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}

	found := tester.Find(drifttest.ByPredicate(func(e core.Element) bool {
		switch e.Widget().(type) {
		case ImageSection, TitleSection, ButtonSection, TextSection:
			return true
		}
		return false
	})).All()

	var order []string
	for _, el := range found {
		order = append(order, fmt.Sprintf("%T", el.Widget()))
	}
	want := []string{"main.ImageSection", "main.TitleSection", "main.ButtonSection", "main.TextSection"}
	if len(order) != len(want) {
		t.Fatalf("sections %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("section order %v, want %v", order, want)
		}
	}

	scrollable := tester.Find(drifttest.Ancestor(
		drifttest.ByType[TitleSection](),
		drifttest.ByType[widgets.ScrollView](),
	))
	if !scrollable.Exists() {
		t.Error("sections should live inside the scrollable body")
	}
	pinnedTitle := tester.Find(drifttest.Ancestor(
		drifttest.ByText(appTitle),
		drifttest.ByType[widgets.ScrollView](),
	))
	if pinnedTitle.Exists() {
		t.Error("the title bar must stay outside the scrollable body")
	}
}

func TestApp_FillsSectionContent(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}

	title := tester.Find(drifttest.ByType[TitleSection]()).Widget().(TitleSection)
	if title.Name != campName || title.Location != campLocation || title.Rating != campRating {
		t.Errorf("title section = %+v, want campground content", title)
	}

	if !tester.Find(drifttest.ByTextContaining("summer toboggan run")).Exists() {
		t.Error("description paragraph is missing")
	}

	img := tester.Find(drifttest.ByType[ImageSection]()).Widget().(ImageSection)
	if img.Source == nil {
		t.Error("cover photo failed to load")
	}
	if img.SemanticLabel == "" {
		t.Error("cover photo should carry a semantic label")
	}
}

func TestApp_RendersStatically(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}
	first := tester.CaptureSnapshot()

	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("second PumpWidget failed: %v", err)
	}
	second := tester.CaptureSnapshot()

	if diff := first.Diff(second); diff != "" {
		t.Errorf("two builds of the same screen differ:\n%s", diff)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle failed: %v", err)
	}
	settled := tester.CaptureSnapshot()
	if diff := second.Diff(settled); diff != "" {
		t.Errorf("screen changed after settling with no input:\n%s", diff)
	}
}

func TestManifest_DescribesThisApp(t *testing.T) {
	data, err := os.ReadFile("drift.yaml")
	if err != nil {
		t.Fatalf("read drift.yaml: %v", err)
	}

	var cfg struct {
		App struct {
			Name string `yaml:"name"`
			ID   string `yaml:"id"`
		} `yaml:"app"`
		Engine struct {
			Version string `yaml:"version"`
		} `yaml:"engine"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("parse drift.yaml: %v", err)
	}

	if cfg.App.Name != "layout_demo" {
		t.Errorf("app name = %q, want layout_demo", cfg.App.Name)
	}
	if !strings.HasSuffix(cfg.App.ID, "."+cfg.App.Name) {
		t.Errorf("app id %q should end with the app name", cfg.App.ID)
	}
	for _, segment := range strings.Split(cfg.App.ID, ".") {
		if segment == "" {
			t.Fatalf("app id %q has an empty segment", cfg.App.ID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				t.Errorf("app id %q has invalid character %q", cfg.App.ID, r)
			}
		}
	}
	if !strings.HasPrefix(cfg.Engine.Version, "v") {
		t.Errorf("engine version = %q, want a tagged release", cfg.Engine.Version)
	}
}
