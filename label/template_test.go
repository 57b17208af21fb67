package label

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		brand   string
		want    string
		wantErr bool
	}{
		{
			name:  "exact brand key",
			brand: "ARM2",
			want:  "ARM2",
		},
		{
			name:  "lowercase brand key",
			brand: "armbest",
			want:  "ARMBEST",
		},
		{
			name:  "mixed case brand key",
			brand: "BestShoes",
			want:  "BESTSHOES",
		},
		{
			name:    "unsupported brand",
			brand:   "NOBRAND",
			wantErr: true,
		},
		{
			name:    "empty brand",
			brand:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := Lookup(tt.brand)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Lookup(%q) expected error, got nil", tt.brand)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.brand, err)
			}
			if tpl.Brand != tt.want {
				t.Errorf("Lookup(%q).Brand = %q, want %q", tt.brand, tpl.Brand, tt.want)
			}
		})
	}
}

func TestTemplateStandard(t *testing.T) {
	tpl, err := Lookup("BEST26")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if got := tpl.Standard(true); got != tpl.StandardSmall {
		t.Errorf("Standard(true) = %q, want %q", got, tpl.StandardSmall)
	}
	if got := tpl.Standard(false); got != tpl.StandardBig {
		t.Errorf("Standard(false) = %q, want %q", got, tpl.StandardBig)
	}
	if tpl.StandardSmall == tpl.StandardBig {
		t.Error("small and big standards should differ")
	}
}

func TestTemplatesGeometry(t *testing.T) {
	for brand, tpl := range templates {
		t.Run(brand, func(t *testing.T) {
			if tpl.PageWidth <= 0 || tpl.PageHeight <= 0 {
				t.Errorf("invalid page size %gx%g", tpl.PageWidth, tpl.PageHeight)
			}
			if len(tpl.Table.Rows) == 0 {
				t.Error("template has no table rows")
			}
			// Rows must fit inside the declared table box, below an optional header band
			used := tpl.Table.RowHeight * float64(len(tpl.Table.Rows))
			if tpl.Table.Header != nil {
				used += tpl.Table.Header.H
			}
			if used > tpl.Table.H+0.01 {
				t.Errorf("table rows use %.1fmm but box height is %.1fmm", used, tpl.Table.H)
			}
			if tpl.Barcode.W <= 0 || tpl.Barcode.H <= 0 {
				t.Errorf("invalid barcode box %gx%g", tpl.Barcode.W, tpl.Barcode.H)
			}
		})
	}
}
