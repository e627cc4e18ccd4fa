// Package classifying normaliza nomes de produtos e os classifica em
// categoria e marca através de regras ordenadas de palavras-chave.
package classifying

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MissingText substitui textos ausentes antes da normalização.
// Já está normalizado, então Normalize(MissingText) == MissingText.
const MissingText = "sin descripcion"

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	disallowedRe = regexp.MustCompile(`[^a-z0-9áéíóúüñ ]`)
)

// Normalize canoniza um nome livre de produto para comparação e deduplicação:
// minúsculas, apenas [a-z0-9áéíóúüñ] e espaços simples, sem espaços nas pontas.
func Normalize(text string) string {
	// NFC compõe acentos decompostos (e + ´ -> é) para que sobrevivam ao filtro
	s := norm.NFC.String(text)
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = disallowedRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeOptional trata o texto ausente como MissingText
func NormalizeOptional(text *string) string {
	if text == nil {
		return MissingText
	}
	return Normalize(*text)
}
