package label

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"wb-labels/models"
)

// rendererForTest builds a Renderer against the repo assets directory and
// skips when the label fonts are not installed locally
func rendererForTest(t *testing.T) *Renderer {
	t.Helper()

	assets := NewAssets(filepath.Join("..", "assets"))
	if _, err := os.Stat(assets.FontRegular()); err != nil {
		t.Skipf("label fonts not installed: %v", err)
	}
	return NewRenderer(assets)
}

func testJob() models.LabelJob {
	return models.LabelJob{
		TechSize: "36-37",
		Barcode:  "2000000000017",
		Article:  "123ABC",
		Color:    "черный",
		Standard: "ТУ 15.20.11-001-0188541950-2022",
		Gender:   "мужская",
	}
}

func TestRenderAllBrands(t *testing.T) {
	renderer := rendererForTest(t)

	for brand := range templates {
		t.Run(brand, func(t *testing.T) {
			tpl, err := Lookup(brand)
			if err != nil {
				t.Fatal(err)
			}

			document, result, err := renderer.Render(tpl, testJob())
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.HasPrefix(document, []byte("%PDF")) {
				t.Error("output is not a PDF document")
			}
			if result == nil {
				t.Fatal("Render() returned nil result")
			}
		})
	}
}

func TestRenderMissingFontFails(t *testing.T) {
	renderer := NewRenderer(NewAssets(t.TempDir()))
	tpl, err := Lookup("ARM2")
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := renderer.Render(tpl, testJob()); err == nil {
		t.Error("Render() expected error when fonts are missing, got nil")
	}
}

func TestRenderMissingLogoWarns(t *testing.T) {
	renderer := rendererForTest(t)

	// BESTSHOES uses an invalid-EAN barcode value here on purpose, so both
	// warning paths are exercised in one render
	tpl, err := Lookup("BESTSHOES")
	if err != nil {
		t.Fatal(err)
	}

	job := testJob()
	job.Barcode = "NOT-AN-EAN"

	document, result, err := renderer.Render(tpl, job)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(document) == 0 {
		t.Error("Render() returned empty document")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a barcode fallback warning")
	}
}
