package label

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"wb-labels/models"
)

// RendererInterface defines the contract for rendering one label document
type RendererInterface interface {
	Render(tpl *Template, job models.LabelJob) ([]byte, *RenderResult, error)
}

// RenderResult carries non-fatal render warnings (skipped decorative logos,
// barcode symbology fallback). A document with warnings is still valid
type RenderResult struct {
	Warnings []string
}

// Renderer draws label documents from template data.
// Implements RendererInterface
type Renderer struct {
	assets Assets
}

// NewRenderer creates a Renderer reading fonts and logos from assets
func NewRenderer(assets Assets) *Renderer {
	return &Renderer{assets: assets}
}

// Ensure Renderer implements RendererInterface
var _ RendererInterface = (*Renderer)(nil)

const (
	fontFamily = "calibri"
	ptToMM     = 25.4 / 72
)

// Render produces one label PDF for a job using the brand template.
// A missing font is fatal; a missing logo image only produces a warning.
func (r *Renderer) Render(tpl *Template, job models.LabelJob) ([]byte, *RenderResult, error) {
	result := &RenderResult{}

	// The page is created in its final orientation; a rotated template keeps
	// all layout math in the unrotated frame and turns it as the last step
	pageW, pageH := tpl.PageWidth, tpl.PageHeight
	if tpl.RotateFinal {
		pageW, pageH = tpl.PageHeight, tpl.PageWidth
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	if err := r.loadFonts(doc); err != nil {
		return nil, nil, err
	}

	doc.AddPage()

	if tpl.RotateFinal {
		// Rotate the whole layout 90° counter-clockwise onto the portrait
		// page: translate is declared first so it applies after the rotation
		doc.TransformBegin()
		doc.TransformTranslate(0, tpl.PageWidth)
		doc.TransformRotate(90, 0, 0)
	}

	if tpl.Border != nil {
		doc.SetDrawColor(0, 0, 0)
		doc.SetLineWidth(tpl.Border.LineWidth)
		inset := tpl.Border.Inset
		doc.Rect(inset, inset, tpl.PageWidth-2*inset, tpl.PageHeight-2*inset, "D")
	}

	doc.SetTextColor(0, 0, 0)
	for _, block := range tpl.Texts {
		r.drawText(doc, block, job)
	}

	for _, logo := range tpl.Logos {
		path := r.assets.Logo(logo.File)
		if _, err := os.Stat(path); err != nil {
			warning := fmt.Sprintf("logo %s not found, skipped", logo.File)
			log.Printf("⚠️ %s", warning)
			result.Warnings = append(result.Warnings, warning)
			continue
		}
		doc.ImageOptions(path, logo.X, logo.Y, logo.W, logo.H, false,
			fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	r.drawTable(doc, tpl.Table, job)

	if err := r.drawBarcode(doc, tpl.Barcode, job.Barcode, result); err != nil {
		return nil, nil, err
	}

	if tpl.RotateFinal {
		doc.TransformEnd()
	}

	if doc.Error() != nil {
		return nil, nil, fmt.Errorf("failed to render label for %s/%s: %w", job.Article, job.TechSize, doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("failed to write label document: %w", err)
	}
	return buf.Bytes(), result, nil
}

// loadFonts embeds the regular and bold label fonts. Both are required
func (r *Renderer) loadFonts(doc *fpdf.Fpdf) error {
	regular, err := os.ReadFile(r.assets.FontRegular())
	if err != nil {
		return fmt.Errorf("failed to read label font: %w", err)
	}
	bold, err := os.ReadFile(r.assets.FontBold())
	if err != nil {
		return fmt.Errorf("failed to read bold label font: %w", err)
	}
	doc.AddUTF8FontFromBytes(fontFamily, "", regular)
	doc.AddUTF8FontFromBytes(fontFamily, "B", bold)
	if doc.Error() != nil {
		return fmt.Errorf("failed to embed label fonts: %w", doc.Error())
	}
	return nil
}

func (r *Renderer) drawText(doc *fpdf.Fpdf, block TextBlock, job models.LabelJob) {
	style := ""
	if block.Bold {
		style = "B"
	}
	doc.SetFont(fontFamily, style, block.Size)

	text := fieldValue(block.Field, block.Text, job)
	if block.MaxWidth > 0 {
		lineHeight := block.Size * ptToMM * 1.25
		doc.SetXY(block.X, block.Y)
		doc.MultiCell(block.MaxWidth, lineHeight, text, "", "L", false)
		return
	}
	doc.Text(block.X, block.Y+block.Size*ptToMM, text)
}

func (r *Renderer) drawTable(doc *fpdf.Fpdf, table Table, job models.LabelJob) {
	doc.SetLineWidth(0.25)

	rowsTop := table.Y
	if table.Filled {
		doc.SetFillColor(0, 0, 0)
		doc.Rect(table.X, table.Y, table.W, table.H, "F")
		doc.SetDrawColor(255, 255, 255)
	} else {
		doc.SetDrawColor(0, 0, 0)
		doc.Rect(table.X, table.Y, table.W, table.H, "D")
	}

	if table.Header != nil {
		doc.SetFillColor(0, 0, 0)
		doc.Rect(table.X, table.Y, table.W, table.Header.H, "F")
		doc.SetTextColor(255, 255, 255)
		doc.SetFont(fontFamily, "B", table.Header.Size)
		doc.Text(table.Header.TextX, table.Header.TextY, fieldValue(FieldGender, "", job))
		rowsTop += table.Header.H
	}

	// Background for inverted rows of an otherwise plain table
	if !table.Filled {
		for i, row := range table.Rows {
			if row.Inverted {
				doc.SetFillColor(0, 0, 0)
				doc.Rect(table.X, rowsTop+float64(i)*table.RowHeight, table.W, table.RowHeight, "F")
			}
		}
	}

	// Column divider and row separators
	doc.Line(table.X+table.ColumnSplit, rowsTop, table.X+table.ColumnSplit, table.Y+table.H)
	for i := 1; i < len(table.Rows); i++ {
		y := rowsTop + float64(i)*table.RowHeight
		doc.Line(table.X, y, table.X+table.W, y)
	}

	for i, row := range table.Rows {
		rowTop := rowsTop + float64(i)*table.RowHeight
		baseline := rowTop + (table.RowHeight+table.FontSize*ptToMM)/2

		if row.Inverted {
			doc.SetTextColor(255, 255, 255)
		} else {
			doc.SetTextColor(0, 0, 0)
		}

		keyStyle := ""
		if table.KeyBold {
			keyStyle = "B"
		}
		doc.SetFont(fontFamily, keyStyle, table.FontSize)
		doc.Text(table.X+0.7, baseline, row.Key)

		valueStyle := ""
		if row.ValueBold {
			valueStyle = "B"
		}
		doc.SetFont(fontFamily, valueStyle, table.FontSize+row.ValueSizeDelta)
		doc.Text(table.X+table.ValueOffset, baseline, fieldValue(row.Field, row.Value, job))
	}

	doc.SetTextColor(0, 0, 0)
}

func (r *Renderer) drawBarcode(doc *fpdf.Fpdf, spec Barcode, value string, result *RenderResult) error {
	barsH := spec.H
	textH := 0.0
	if spec.ShowValue && !spec.ValueRotated {
		// Keep the human-readable line inside the barcode box
		textH = spec.ValueSize*ptToMM + 1
		barsH -= textH
	}

	png, warning, err := GenerateBarcode(spec.Format, value, spec.W, barsH, spec.Rotated)
	if warning != "" {
		log.Printf("⚠️ %s", warning)
		result.Warnings = append(result.Warnings, warning)
	}
	if err != nil {
		return err
	}

	name := "barcode-" + value
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	doc.ImageOptions(name, spec.X, spec.Y, spec.W, barsH, false, opts, 0, "")

	if !spec.ShowValue {
		return nil
	}

	doc.SetFont(fontFamily, "B", spec.ValueSize)
	if spec.ValueRotated {
		doc.TransformBegin()
		doc.TransformRotate(90, spec.ValueX, spec.ValueY)
		doc.Text(spec.ValueX, spec.ValueY, value)
		doc.TransformEnd()
		return nil
	}

	width := doc.GetStringWidth(value)
	doc.Text(spec.X+(spec.W-width)/2, spec.Y+spec.H-0.5, value)
	return nil
}

// fieldValue resolves a template field against the current job
func fieldValue(field Field, static string, job models.LabelJob) string {
	switch field {
	case FieldDate:
		return time.Now().Format("02.01.2006")
	case FieldStandard:
		return job.Standard
	case FieldGender:
		return "Обувь " + job.Gender
	case FieldArticle:
		return job.Article
	case FieldColor:
		return job.Color
	case FieldSize:
		return job.TechSize
	default:
		return static
	}
}
