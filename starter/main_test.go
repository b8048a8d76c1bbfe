package main

import (
	"testing"

	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"
)

func TestStarter_ShowsCenteredGreeting(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}

	if !tester.Find(drifttest.ByText("Hello World")).Exists() {
		t.Fatal("greeting not found")
	}

	centered := tester.Find(drifttest.Ancestor(
		drifttest.ByText("Hello World"),
		drifttest.ByType[widgets.Center](),
	))
	if !centered.Exists() {
		t.Error("greeting should be centered in the body")
	}
}

func TestStarter_ShowsAppTitle(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(App()); err != nil {
		t.Fatalf("PumpWidget failed: %v", err)
	}

	if tester.Find(drifttest.ByText(appTitle)).Count() != 1 {
		t.Fatal("title bar text not found")
	}
}
