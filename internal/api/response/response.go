// Package response concentra a escrita das respostas JSON da API,
// para que todos os handlers devolvam o mesmo formato de sucesso e de erro.
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
)

// maxBodyBytes limita o corpo aceito pelos handlers.
const maxBodyBytes = 1 << 20

// JSON escreve data com o status informado.
func JSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(data)
}

// Error mapeia err para o corpo de erro padrão. 5xx são logados com a causa raiz,
// que nunca chega ao cliente.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s", r.Method, r.URL.Path), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	_ = JSON(w, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Details:  apperror.DetailsOf(err),
	})
}

// Handle é o equivalente ao handleServiceResponse: erro ou sucesso com successStatus.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}
	if jsonErr := JSON(w, successStatus, data); jsonErr != nil {
		log.Error("Falha ao codificar JSON de resposta", jsonErr)
	}
}

// DecodeJSON lê o corpo da requisição em dst. Campos desconhecidos e dados
// após o primeiro valor JSON são rejeitados.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return apperror.NewValidationError("O corpo da requisição está vazio.")
		}
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	// O corpo deve conter um único valor JSON.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return apperror.NewValidationError("Payload inválido. O corpo deve conter um único objeto JSON.")
	}
	return nil
}

// PathUUID lê o parâmetro de rota name e exige um UUID válido.
func PathUUID(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperror.NewFieldValidationError(
			fmt.Sprintf("%s: deve ser um UUID válido", name),
			map[string]string{name: "deve ser um UUID válido"},
		)
	}
	return raw, nil
}
