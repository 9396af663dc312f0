package dto

// PageRequest Paginierung für Listen.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage setzt Standardwerte, falls Limit/Offset nicht angegeben sind.
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

// PageResponse Seitenmetadaten in Antworten.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse HTTP-Fehlerkörper.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
