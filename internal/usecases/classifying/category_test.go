package classifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Mouse simples", input: "mouse logitech m90", expected: CategoryMouse},
		{name: "Mouse tem prioridade sobre laptop", input: "mouse para laptop hp", expected: CategoryMouse},
		{name: "Mouse pad continua mouse", input: "mouse pad gamer", expected: CategoryMouse},
		{name: "Laptop", input: "laptop lenovo ideapad 3", expected: CategoryLaptop},
		{name: "Memoria para laptop vence almacenamiento", input: "memoria para laptop 8gb", expected: CategoryLaptop},
		{name: "Servicio a laptop vence servicios", input: "servicio a laptop", expected: CategoryLaptop},
		{name: "Cargador", input: "cargador universal 90w", expected: CategoryLaptop},
		{name: "Impresora", input: "impresora epson l3250", expected: CategoryPrinters},
		{name: "Tinta", input: "tinta epson 664 negro", expected: CategoryPrinters},
		{name: "Cable hdmi", input: "cable hdmi 3m", expected: CategoryCables},
		{name: "USB antes de almacenamiento", input: "memoria usb 32gb", expected: CategoryCables},
		{name: "Disco", input: "disco ssd kingston 480gb", expected: CategoryStorage},
		{name: "Memoria sozinha", input: "memoria ddr4 8gb", expected: CategoryStorage},
		{name: "Procesador", input: "procesador intel core i5", expected: CategoryComponents},
		{name: "Fuente", input: "fuente de poder 600w", expected: CategoryComponents},
		{name: "Teclado", input: "teclado redragon kumara", expected: CategoryPeripherals},
		{name: "Audifono", input: "audifono sony", expected: CategoryCameraAudio},
		{name: "Licencia", input: "licencia office 2021", expected: CategorySoftware},
		{name: "Reparacion", input: "reparacion de impresora", expected: CategoryPrinters},
		{name: "Mantenimiento", input: "mantenimiento preventivo", expected: CategoryServices},
		{name: "Sem palavra-chave", input: "silla ergonomica", expected: CategoryOther},
		{name: "Vazio", input: "", expected: CategoryOther},
		{name: "Texto ausente", input: MissingText, expected: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyCategory(tt.input))
		})
	}
}

func TestClassifyCategory_ClosedSet(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 11)
	assert.Equal(t, CategoryMouse, categories[0])
	assert.Equal(t, CategoryOther, categories[len(categories)-1])

	inputs := []string{"mouse", "xyz", "cable", "ram", "windows 11 pro", "kit de limpieza", "123"}
	for _, input := range inputs {
		assert.Contains(t, categories, ClassifyCategory(input))
	}
}

func TestClassifyCategory_MouseAlwaysWins(t *testing.T) {
	// qualquer texto com "mouse" é Mouse, mesmo contendo palavras de outras regras
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			assert.Equal(t, CategoryMouse, ClassifyCategory(kw+" mouse"), "keyword %q", kw)
		}
	}
}
