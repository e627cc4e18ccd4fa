package classifying

import "strings"

// BrandOther é devolvida quando nenhuma palavra-chave de marca aparece no nome
const BrandOther = "OTROS"

// brandsByCategory tem prioridade sobre fallbackBrands. A ordem importa:
// vence a primeira marca da lista encontrada no nome.
var brandsByCategory = map[string][]string{
	CategoryLaptop:      {"hp", "lenovo", "asus", "acer", "dell", "samsung", "msi", "gigabyte", "razer", "toshiba", "huawei"},
	CategoryMouse:       {"logitech", "genius", "hyperx", "redragon", "halion", "teros", "microsoft", "razer", "hp"},
	CategoryPrinters:    {"epson", "canon", "hp", "brother", "kodak"},
	CategoryCameraAudio: {"logitech", "philips", "sony", "jbl", "xiaomi", "anker"},
}

var fallbackBrands = []string{"hp", "lenovo", "asus", "acer", "dell", "logitech", "canon", "epson", "brother", "redragon", "razer", "samsung", "msi"}

// DetectBrand devolve a marca (em maiúsculas) para a categoria e o nome normalizado
func DetectBrand(category, name string) string {
	text := strings.ToLower(name)

	if keywords, ok := brandsByCategory[category]; ok {
		if brand, found := firstKeyword(text, keywords); found {
			return brand
		}
	}

	if brand, found := firstKeyword(text, fallbackBrands); found {
		return brand
	}

	return BrandOther
}

func firstKeyword(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return strings.ToUpper(kw), true
		}
	}
	return "", false
}
