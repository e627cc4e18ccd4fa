package domain

// Client é identificado pelo documento (DNI/RUC), que pode estar ausente
type Client struct {
	ID         int64   `json:"id_cliente"`
	DocumentID *string `json:"doc_cliente"`
	Name       *string `json:"cliente"`
	Phone      *string `json:"telefono"`
}
