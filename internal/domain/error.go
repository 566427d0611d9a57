package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int               `json:"code" example:"400"`
	Category string            `json:"category" example:"VALIDATION_ERROR"`
	Message  string            `json:"message" example:"Erro de Validação: o nome do item é obrigatório."`
	Details  map[string]string `json:"details,omitempty"`
}

// MessageResponse é usada em respostas simples de confirmação.
type MessageResponse struct {
	Message string `json:"message" example:"Item removido com sucesso"`
}
