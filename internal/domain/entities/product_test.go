package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateProductInput_TouchesVerifiedFields(t *testing.T) {
	current := &Product{
		Name:        "Tomatoes",
		Description: "Fresh vine tomatoes",
		Category:    "vegetables",
		Price:       3.50,
		Unit:        "kg",
		ImageRef:    "tomatoes.jpg",
	}

	str := func(s string) *string { return &s }
	num := func(f float64) *float64 { return &f }

	tests := []struct {
		name  string
		input UpdateProductInput
		want  bool
	}{
		{"empty update", UpdateProductInput{}, false},
		{"price only", UpdateProductInput{Price: num(4.00)}, false},
		{"unit only", UpdateProductInput{Unit: str("bunch")}, false},
		{"name changed", UpdateProductInput{Name: str("Cherry Tomatoes")}, true},
		{"description changed", UpdateProductInput{Description: str("Greenhouse grown")}, false},
		{"category changed", UpdateProductInput{Category: str("fruit")}, true},
		{"image changed", UpdateProductInput{ImageRef: str("cherry.jpg")}, true},
		{"same values", UpdateProductInput{Name: str("Tomatoes"), ImageRef: str("tomatoes.jpg")}, false},
		{"same name new image", UpdateProductInput{Name: str("Tomatoes"), ImageRef: str("new.jpg")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.TouchesVerifiedFields(current))
		})
	}
}
