package cartControllers

import (
	"testing"

	"github.com/sarelalush/Orel-site/models"
)

func TestValidateVariant(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		input   CartItemInput
		wantMsg string
		// expected input after normalization
		wantSize, wantColor string
	}{
		{
			name:    "plain product clears stray variant fields",
			product: models.Product{},
			input:   CartItemInput{Size: "L", Color: "black"},
		},
		{
			name:    "sized product requires size",
			product: models.Product{HasSizes: true},
			input:   CartItemInput{},
			wantMsg: "size is required for this product",
		},
		{
			name:     "sized product keeps size, drops color",
			product:  models.Product{HasSizes: true},
			input:    CartItemInput{Size: "XL", Color: "red"},
			wantSize: "XL",
		},
		{
			name:    "colored product requires color",
			product: models.Product{HasColors: true},
			input:   CartItemInput{},
			wantMsg: "color is required for this product",
		},
		{
			name:      "full variant product keeps both",
			product:   models.Product{HasSizes: true, HasColors: true},
			input:     CartItemInput{Size: "M", Color: "sand"},
			wantSize:  "M",
			wantColor: "sand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			msg := validateVariant(&tt.product, &input)
			if msg != tt.wantMsg {
				t.Fatalf("msg = %q, want %q", msg, tt.wantMsg)
			}
			if msg != "" {
				return
			}
			if input.Size != tt.wantSize || input.Color != tt.wantColor {
				t.Errorf("normalized to size=%q color=%q, want size=%q color=%q",
					input.Size, input.Color, tt.wantSize, tt.wantColor)
			}
		})
	}
}
