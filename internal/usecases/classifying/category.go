package classifying

import "strings"

// Categorias possíveis, na ordem de prioridade de avaliação
const (
	CategoryMouse       = "Mouse"
	CategoryLaptop      = "Laptop y accesorios"
	CategoryPrinters    = "Impresoras y consumibles"
	CategoryCables      = "Cables y conectores"
	CategoryStorage     = "Almacenamiento"
	CategoryComponents  = "Componentes y hardware PC"
	CategoryPeripherals = "Periféricos y accesorios"
	CategoryCameraAudio = "Cámaras y audio"
	CategorySoftware    = "Software y licencias"
	CategoryServices    = "Servicios técnicos"
	CategoryOther       = "Otros"
)

// CategoryRule associa um rótulo às palavras-chave que o ativam.
// Uma regra sem palavras-chave casa com qualquer texto.
type CategoryRule struct {
	Label    string
	Keywords []string
}

func (r CategoryRule) matches(name string) bool {
	if len(r.Keywords) == 0 {
		return true
	}
	return containsAny(name, r.Keywords)
}

// categoryRules é avaliada em ordem e a primeira regra que casa vence.
// "mouse" vem antes de tudo e "Otros" fecha a lista.
var categoryRules = []CategoryRule{
	{Label: CategoryMouse, Keywords: []string{"mouse"}},
	{Label: CategoryLaptop, Keywords: []string{"laptop", "notebook", "bateria", "pantalla", "cargador", "memoria para laptop", "servicio a laptop"}},
	{Label: CategoryPrinters, Keywords: []string{"tinta", "cartucho", "toner", "impresora", "cabezal", "multifuncional"}},
	{Label: CategoryCables, Keywords: []string{"hdmi", "vga", "display port", "usb", "cable", "adaptador", "otg", "patch", "plug", "utp"}},
	{Label: CategoryStorage, Keywords: []string{"memoria", "ssd", "disco", "enclosure", "caddy", "flash", "pendrive"}},
	{Label: CategoryComponents, Keywords: []string{"procesador", "placa madre", "case", "gabinete", "cooler", "fuente", "ram", "motherboard"}},
	{Label: CategoryPeripherals, Keywords: []string{"teclado", "parlante", "hub", "mochila", "funda", "protector", "kit de limpieza"}},
	{Label: CategoryCameraAudio, Keywords: []string{"camara", "webcam", "audifono", "headset", "microfono"}},
	{Label: CategorySoftware, Keywords: []string{"licencia", "office", "windows", "antivirus"}},
	{Label: CategoryServices, Keywords: []string{"reparacion", "servicio", "instalacion", "mantenimiento"}},
	{Label: CategoryOther},
}

// ClassifyCategory devolve exatamente uma categoria para o nome normalizado
func ClassifyCategory(name string) string {
	for _, rule := range categoryRules {
		if rule.matches(name) {
			return rule.Label
		}
	}
	return CategoryOther
}

// Categories devolve o conjunto fechado de categorias na ordem de prioridade
func Categories() []string {
	labels := make([]string, 0, len(categoryRules))
	for _, rule := range categoryRules {
		labels = append(labels, rule.Label)
	}
	return labels
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
