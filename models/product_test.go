package models

import (
	"encoding/json"
	"testing"
)

func TestEffectivePrice(t *testing.T) {
	sale := 90.0
	zero := 0.0

	tests := []struct {
		name string
		p    Product
		want float64
	}{
		{"no sale price", Product{Price: 110}, 110},
		{"sale price wins", Product{Price: 110, SalePrice: &sale}, 90},
		{"zero sale price ignored", Product{Price: 110, SalePrice: &zero}, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.EffectivePrice(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONStrings(t *testing.T) {
	if JSONStrings(nil) != nil {
		t.Error("empty slice should produce a nil column value")
	}

	col := JSONStrings([]string{"S", "M", "L"})
	var back []string
	if err := json.Unmarshal(col, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 3 || back[1] != "M" {
		t.Errorf("round trip = %v", back)
	}
}

func TestJSONColors(t *testing.T) {
	col := JSONColors([]ColorOption{{Name: "sand", Label: "Sand", Hex: "#c2b280"}})
	var back []ColorOption
	if err := json.Unmarshal(col, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || back[0].Hex != "#c2b280" {
		t.Errorf("round trip = %+v", back)
	}
}
