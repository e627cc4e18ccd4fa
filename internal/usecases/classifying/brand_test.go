package classifying

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		name     string
		category string
		input    string
		expected string
	}{
		{name: "Mouse Logitech", category: CategoryMouse, input: "mouse logitech m90", expected: "LOGITECH"},
		{name: "Ordem da lista da categoria", category: CategoryMouse, input: "mouse hp compatible logitech", expected: "LOGITECH"},
		{name: "Laptop HP", category: CategoryLaptop, input: "laptop hp 15", expected: "HP"},
		{name: "Impresora Epson", category: CategoryPrinters, input: "impresora epson l3250", expected: "EPSON"},
		{name: "Câmera Sony", category: CategoryCameraAudio, input: "audifono sony wh", expected: "SONY"},
		{name: "Categoria sem lista usa fallback", category: CategoryStorage, input: "disco ssd samsung 870", expected: "SAMSUNG"},
		{name: "Lista da categoria sem acerto usa fallback", category: CategoryCameraAudio, input: "headset redragon zeus", expected: "REDRAGON"},
		{name: "Marca fora do fallback", category: CategoryCables, input: "cable usb xiaomi", expected: BrandOther},
		{name: "Sem marca", category: CategoryOther, input: "silla ergonomica", expected: BrandOther},
		{name: "Substring conta", category: CategoryOther, input: "chpad", expected: "HP"},
		{name: "Categoria desconhecida", category: "Inexistente", input: "teclado genius", expected: BrandOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectBrand(tt.category, tt.input))
		})
	}
}

func TestDetectBrand_OtrosOnlyWithoutKeywords(t *testing.T) {
	names := []string{
		"mouse logitech", "teclado genius", "laptop gigabyte aero", "tinta kodak",
		"parlante jbl", "silla", "cable", "disco toshiba", "camara anker", "",
	}

	for _, category := range Categories() {
		for _, name := range names {
			keywords := append([]string{}, brandsByCategory[category]...)
			keywords = append(keywords, fallbackBrands...)

			hasKeyword := false
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					hasKeyword = true
					break
				}
			}

			brand := DetectBrand(category, name)
			assert.Equal(t, !hasKeyword, brand == BrandOther, "categoria %q nome %q -> %q", category, name, brand)
		}
	}
}

func TestClassify(t *testing.T) {
	article := "Mouse Logitech M90"
	result := Classify(&article)

	assert.Equal(t, Classification{
		NormalizedName: "mouse logitech m90",
		Category:       CategoryMouse,
		Brand:          "LOGITECH",
	}, result)

	missing := Classify(nil)
	assert.Equal(t, MissingText, missing.NormalizedName)
	assert.Equal(t, CategoryOther, missing.Category)
	assert.Equal(t, BrandOther, missing.Brand)
}
