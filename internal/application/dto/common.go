package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// ErrorResponse cuerpo de error HTTP. Los campos de ids ofensivos solo se
// serializan cuando el error de configuración los trae.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	InvalidOptionIDs      []int64 `json:"invalid_option_ids,omitempty"`
	InvalidOptionValueIDs []int64 `json:"invalid_option_value_ids,omitempty"`
	DuplicateOptionIDs    []int64 `json:"duplicate_option_ids,omitempty"`
	OptionID              int64   `json:"option_id,omitempty"`
	OptionName            string  `json:"option_name,omitempty"`
}
