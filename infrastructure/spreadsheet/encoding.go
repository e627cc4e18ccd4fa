package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Decode converte o conteúdo para UTF-8. Em modo "auto" remove o BOM, mantém
// UTF-8 válido e trata o resto como Windows-1252, que é o que o Excel exporta
// em máquinas com Windows em espanhol.
func Decode(data []byte, encoding string) ([]byte, string, error) {
	switch strings.ToLower(encoding) {
	case "", "auto":
		if bytes.HasPrefix(data, bomUTF8) {
			return data[len(bomUTF8):], "utf-8-bom", nil
		}
		if utf8.Valid(data) {
			return data, "utf-8", nil
		}
		return decodeWith(charmap.Windows1252, data, "windows-1252")
	case "utf-8", "utf8":
		return bytes.TrimPrefix(data, bomUTF8), "utf-8", nil
	case "windows-1252", "cp1252":
		return decodeWith(charmap.Windows1252, data, "windows-1252")
	case "iso-8859-1", "latin1":
		return decodeWith(charmap.ISO8859_1, data, "iso-8859-1")
	default:
		return nil, "", fmt.Errorf("codificação não suportada: %q", encoding)
	}
}

func decodeWith(cm *charmap.Charmap, data []byte, name string) ([]byte, string, error) {
	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao decodificar %s: %w", name, err)
	}
	return decoded, name, nil
}
