package domain

// Product é identificado pelo nome normalizado. Categoria e marca são
// atribuídas na criação e nunca alteradas.
type Product struct {
	ID             int64   `json:"id_producto"`
	OriginalName   string  `json:"nombre_original"`
	NormalizedName string  `json:"nombre_limpio"`
	Category       string  `json:"categoria"`
	Brand          string  `json:"marca"`
	ExtraData      *string `json:"dato_extra"`
}
