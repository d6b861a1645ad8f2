package models

import "testing"

func TestParseDealLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		category string
		text     string
	}{
		{
			name:     "Bracketed category",
			line:     "[Drinks] $5 wells",
			category: "Drinks",
			text:     "$5 wells",
		},
		{
			name:     "No category",
			line:     "Free pool after 9",
			category: "",
			text:     "Free pool after 9",
		},
		{
			name:     "Padded line",
			line:     "  [Food] Half-price apps  ",
			category: "Food",
			text:     "Half-price apps",
		},
		{
			name:     "Unclosed bracket",
			line:     "[Drinks $5 wells",
			category: "",
			text:     "[Drinks $5 wells",
		},
		{
			name:     "Empty line",
			line:     "",
			category: "",
			text:     "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			deal := ParseDealLine(test.line)

			if deal.Category != test.category {
				t.Errorf("Expected category %q, got %q", test.category, deal.Category)
			}
			if deal.Text != test.text {
				t.Errorf("Expected text %q, got %q", test.text, deal.Text)
			}
		})
	}
}
