package classifying

// Classification é o resultado da classificação de um artigo
type Classification struct {
	NormalizedName string
	Category       string
	Brand          string
}

// Classify normaliza o texto do artigo e atribui categoria e marca
func Classify(article *string) Classification {
	name := NormalizeOptional(article)
	category := ClassifyCategory(name)

	return Classification{
		NormalizedName: name,
		Category:       category,
		Brand:          DetectBrand(category, name),
	}
}
