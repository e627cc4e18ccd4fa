package utils

import "strings"

// TrimToNil remove espaços das pontas e devolve nil para texto vazio
func TrimToNil(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
