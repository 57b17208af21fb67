package label

import (
	"fmt"
	"strings"
)

// Field identifies which job value a text block or table cell is filled with
type Field int

const (
	FieldStatic Field = iota
	FieldDate
	FieldStandard
	FieldGender // rendered as "Обувь <gender>"
	FieldArticle
	FieldColor
	FieldSize
)

// TextBlock is one positioned text element. Coordinates are millimeters from
// the top-left corner of the unrotated page frame
type TextBlock struct {
	Field    Field
	Text     string  // static text; ignored for dynamic fields
	X, Y     float64 // mm
	Size     float64 // font size in points
	Bold     bool
	MaxWidth float64 // wrap width in mm, 0 disables wrapping
}

// Logo is a regulatory logo image placed on the label. Missing files are
// skipped with a warning, they never fail the render
type Logo struct {
	File       string // file name under the assets directory
	X, Y, W, H float64
}

// TableRow is one row of the data table
type TableRow struct {
	Key            string
	Field          Field  // value source; FieldStatic uses Value
	Value          string // static value text
	ValueBold      bool
	ValueSizeDelta float64 // added to the table font size for the value cell
	Inverted       bool    // light text on the dark band/background
}

// TableHeader is the filled band above the table rows carrying the
// product-type/gender line (ARMBEST style)
type TableHeader struct {
	H            float64 // band height in mm, drawn from the table top
	TextX, TextY float64
	Size         float64
}

// Table is the bordered data table of the label
type Table struct {
	X, Y, W, H  float64
	RowHeight   float64
	ColumnSplit float64 // divider offset from the table left edge
	ValueOffset float64 // value column text offset from the table left edge
	FontSize    float64
	KeyBold     bool         // all keys bold (BESTSHOES style)
	Filled      bool         // whole table filled dark with light dividers (ARM2 style)
	Header      *TableHeader // optional gender band
	Rows        []TableRow
}

// Barcode is the barcode placement spec. X/Y/W/H describe the placed
// bounding box; Rotated rotates the bars 90 degrees inside that box
type Barcode struct {
	Format       BarcodeFormat
	X, Y, W, H   float64
	Rotated      bool
	ShowValue    bool
	ValueSize    float64
	ValueRotated bool
	ValueX       float64 // used only when ValueRotated
	ValueY       float64
}

// Border is an optional frame around the whole page
type Border struct {
	Inset     float64
	LineWidth float64
}

// Template describes one brand's label: page geometry, layout and the pair
// of regulatory standard strings. All coordinates are computed in the
// unrotated frame; RotateFinal turns the finished page 90 degrees as the
// last step
type Template struct {
	Brand         string
	PageWidth     float64 // mm, unrotated frame
	PageHeight    float64
	RotateFinal   bool
	Border        *Border
	Texts         []TextBlock
	Logos         []Logo
	Table         Table
	Barcode       Barcode
	StandardSmall string
	StandardBig   string
}

const composition = "Этиленвинилацетат"

var templates = map[string]*Template{
	"ARM2": {
		Brand:       "ARM2",
		PageWidth:   80,
		PageHeight:  58,
		RotateFinal: true,
		Texts: []TextBlock{
			{Text: "Дата изготовления", X: 4, Y: 5, Size: 9, Bold: true},
			{Field: FieldDate, X: 4, Y: 9, Size: 9},
			{Text: "BEST", X: 4, Y: 13, Size: 10, Bold: true},
			{Text: "— ИНН 260903823168", X: 11, Y: 13.2, Size: 9},
			{Text: "Россия, Ставропольский край, г. Пятигорск, Скачки 2, Промзона", X: 4, Y: 17, Size: 8, MaxWidth: 42},
			{Field: FieldStandard, X: 4, Y: 25, Size: 8, MaxWidth: 42},
		},
		Logos: []Logo{
			{File: "gost.png", X: 32, Y: 6, W: 8, H: 6},
			{File: "eac.png", X: 41, Y: 6, W: 8, H: 6},
		},
		Table: Table{
			X: 3.9, Y: 30.1, W: 42.3, H: 22.6,
			RowHeight: 4.5, ColumnSplit: 21.2, ValueOffset: 21.9,
			FontSize: 10, Filled: true,
			Header: nil,
		},
		Barcode: Barcode{
			Format: FormatCode128,
			X:      52, Y: 2.2, W: 18, H: 53,
			Rotated: true,
			ShowValue: true, ValueSize: 20, ValueRotated: true,
			ValueX: 75, ValueY: 51.2,
		},
		StandardSmall: "ТУ 15.20.11-002-0103228292-2022",
		StandardBig:   "ТУ 15.20.11-001-0188541950-2022",
	},
	"ARMBEST": {
		Brand:      "ARMBEST",
		PageWidth:  58,
		PageHeight: 80,
		Texts: []TextBlock{
			{Text: "Дата изготовления", X: 5, Y: 6, Size: 9, Bold: true},
			{Field: FieldDate, X: 5, Y: 10, Size: 9},
			{Text: "BEST", X: 5, Y: 15, Size: 10, Bold: true},
			{Text: "— ИНН 260905925856", X: 13, Y: 15.2, Size: 9},
			{Text: "Россия, Ставропольский край,\nг. Пятигорск, Скачки 2, Промзона", X: 5, Y: 19, Size: 9, MaxWidth: 48},
			{Field: FieldStandard, X: 5, Y: 26, Size: 8, MaxWidth: 48},
		},
		Logos: []Logo{
			{File: "gost.png", X: 33, Y: 6.6, W: 8, H: 8},
			{File: "eac.png", X: 43, Y: 6, W: 11, H: 9},
		},
		Table: Table{
			X: 5.6, Y: 26.6, W: 49.4, H: 25.6,
			RowHeight: 4.9, ColumnSplit: 19.1, ValueOffset: 19.6,
			FontSize: 10,
			Header:   &TableHeader{H: 6, TextX: 10.6, TextY: 31, Size: 16},
		},
		Barcode: Barcode{
			Format: FormatEAN13,
			X:      1.8, Y: 57.5, W: 54, H: 19,
			ShowValue: true, ValueSize: 10,
		},
		StandardSmall: "ТУ 15.20.11-002-0103228292-2022",
		StandardBig:   "ТУ 15.20.11-001-0188541950-2022",
	},
	"BEST26": {
		Brand:       "BEST26",
		PageWidth:   80,
		PageHeight:  58,
		RotateFinal: true,
		Border:      &Border{Inset: 1, LineWidth: 1.4},
		Texts: []TextBlock{
			{Text: "Дата изготовления", X: 4, Y: 5, Size: 9, Bold: true},
			{Field: FieldDate, X: 4, Y: 9, Size: 9},
			{Text: "BEST", X: 4, Y: 13, Size: 9, Bold: true},
			{Text: "— ИНН 263217056625", X: 11, Y: 13.2, Size: 8},
			{Text: "Россия, Ставропольский край, г. Пятигорск, Скачки 2, Промзона", X: 4, Y: 17, Size: 9, MaxWidth: 34},
			{Field: FieldStandard, X: 4, Y: 29, Size: 6, MaxWidth: 44},
			{Field: FieldGender, X: 43, Y: 5, Size: 14, Bold: true},
		},
		Logos: []Logo{
			{File: "gost.png", X: 5, Y: 35.6, W: 11, H: 9},
			{File: "eac.png", X: 5, Y: 45, W: 11, H: 9},
		},
		Table: Table{
			X: 42.3, Y: 11.8, W: 35.3, H: 19.6,
			RowHeight: 4.9, ColumnSplit: 14.1, ValueOffset: 14.8,
			FontSize: 8,
		},
		Barcode: Barcode{
			Format: FormatEAN13,
			X:      15.9, Y: 33.5, W: 62, H: 22,
			ShowValue: true, ValueSize: 10,
		},
		StandardSmall: "ТУ 15.20.11-001-0138568596-2022",
		StandardBig:   "ТУ 15.20.11-001-304263209000021-2018",
	},
	"BESTSHOES": {
		Brand:      "BESTSHOES",
		PageWidth:  58,
		PageHeight: 80,
		Texts: []TextBlock{
			{Field: FieldGender, X: 12, Y: 24, Size: 16, Bold: true},
			{Text: "BEST", X: 5, Y: 51, Size: 10, Bold: true},
			{Text: "— ИНН 260901997440", X: 13, Y: 51.2, Size: 9},
			{Text: "Россия, Ставропольский край,\nг. Пятигорск, Скачки 2, Промзона", X: 5, Y: 55, Size: 9, MaxWidth: 48},
			{Field: FieldStandard, X: 5, Y: 63, Size: 8, MaxWidth: 48},
			{Text: "Дата изготовления", X: 5, Y: 67, Size: 9, Bold: true},
			{Field: FieldDate, X: 5, Y: 71, Size: 9},
		},
		Logos: []Logo{
			{File: "gost.png", X: 33, Y: 67.6, W: 8, H: 8},
			{File: "eac.png", X: 43, Y: 67, W: 11, H: 9},
		},
		Table: Table{
			X: 5.6, Y: 32.4, W: 49.4, H: 19.6,
			RowHeight: 4.9, ColumnSplit: 19.1, ValueOffset: 19.6,
			FontSize: 10, KeyBold: true,
		},
		Barcode: Barcode{
			Format: FormatEAN13,
			X:      1.8, Y: 3.8, W: 54, H: 19,
			ShowValue: true, ValueSize: 10,
		},
		StandardSmall: "ТУ 15.20.11-001-0138568596-2022",
		StandardBig:   "ТУ 15.20.11-001-304263209000021-2018",
	},
}

func init() {
	// Table rows share the same shape for every brand; styling differs per row
	templates["ARM2"].Table.Rows = []TableRow{
		{Key: "Обувь:", Field: FieldStatic, Value: "Артикул:", Inverted: true},
		{Key: "ARMBEST2", Field: FieldArticle, ValueBold: true, Inverted: true},
		{Key: "Цвет:", Field: FieldColor, ValueBold: true, Inverted: true},
		{Key: "Размер:", Field: FieldSize, ValueBold: true, Inverted: true},
		{Key: "Состав:", Field: FieldStatic, Value: composition, ValueBold: true, ValueSizeDelta: -4, Inverted: true},
	}
	templates["ARMBEST"].Table.Rows = []TableRow{
		{Key: "Артикул:", Field: FieldArticle, ValueBold: true, ValueSizeDelta: 2, Inverted: true},
		{Key: "Цвет:", Field: FieldColor},
		{Key: "Размер:", Field: FieldSize},
		{Key: "Состав:", Field: FieldStatic, Value: composition},
	}
	templates["BEST26"].Table.Rows = []TableRow{
		{Key: "Артикул:", Field: FieldArticle, ValueBold: true, ValueSizeDelta: 4},
		{Key: "Цвет:", Field: FieldColor},
		{Key: "Размер:", Field: FieldSize, ValueBold: true, ValueSizeDelta: 4},
		{Key: "Состав:", Field: FieldStatic, Value: composition, ValueSizeDelta: -2},
	}
	templates["BESTSHOES"].Table.Rows = []TableRow{
		{Key: "Артикул:", Field: FieldArticle},
		{Key: "Цвет:", Field: FieldColor},
		{Key: "Размер:", Field: FieldSize},
		{Key: "Состав:", Field: FieldStatic, Value: composition},
	}
}

// Lookup resolves a brand key to its label template. The key is
// case-insensitive. Unsupported brands return an error naming the brand
func Lookup(brand string) (*Template, error) {
	tpl, ok := templates[strings.ToUpper(brand)]
	if !ok {
		return nil, fmt.Errorf("бренд %s не поддерживается", brand)
	}
	return tpl, nil
}

// Standard returns the regulatory standard string for a size class
func (t *Template) Standard(small bool) string {
	if small {
		return t.StandardSmall
	}
	return t.StandardBig
}
