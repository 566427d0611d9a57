package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/validation"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestStruct_CreateItemRequest(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       domain.CreateItemRequest
		wantField string
	}{
		{"válido", domain.CreateItemRequest{Name: "Parafuso", Quantity: intPtr(0)}, ""},
		{"nome vazio", domain.CreateItemRequest{Name: "", Quantity: intPtr(1)}, "name"},
		{"nome só com espaços", domain.CreateItemRequest{Name: "   ", Quantity: intPtr(1)}, "name"},
		{"quantidade ausente", domain.CreateItemRequest{Name: "Porca"}, "quantity"},
		{"quantidade negativa", domain.CreateItemRequest{Name: "Porca", Quantity: intPtr(-1)}, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.IsType(t, &apperror.ValidationError{}, err)
			assert.Contains(t, apperror.DetailsOf(err), tt.wantField)
		})
	}
}

func TestStruct_AdjustStockRequest(t *testing.T) {
	v := validation.New()

	err := v.Struct(domain.AdjustStockRequest{Type: "MOVE", Quantity: 0, UserID: "abc"})

	require.Error(t, err)
	details := apperror.DetailsOf(err)
	assert.Contains(t, details, "type")
	assert.Contains(t, details, "quantity")
	assert.Contains(t, details, "userId")

	err = v.Struct(domain.AdjustStockRequest{Type: domain.AdjustmentOut, Quantity: 3, UserID: "0d9c0c2e-6d4a-4d71-9a38-7c0f6a1b2c3d"})
	assert.NoError(t, err)
}

func TestStruct_UpdateItemRequest_OptionalFields(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(domain.UpdateItemRequest{}))
	assert.NoError(t, v.Struct(domain.UpdateItemRequest{Name: strPtr("Arruela")}))
	assert.Error(t, v.Struct(domain.UpdateItemRequest{Name: strPtr(" ")}))
	assert.Error(t, v.Struct(domain.UpdateItemRequest{Quantity: intPtr(-5)}))
}

func TestStruct_UserRegistration(t *testing.T) {
	v := validation.New()

	err := v.Struct(domain.UserRegistration{Name: "Ana", Email: "nao-e-email", Password: "123"})

	require.Error(t, err)
	details := apperror.DetailsOf(err)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
	assert.NotContains(t, details, "name")
}

func TestStruct_UserRegistration_PasswordLimitInBytes(t *testing.T) {
	v := validation.New()

	// 40 caracteres, 80 bytes: acima do limite do bcrypt.
	err := v.Struct(domain.UserRegistration{Name: "Ana", Email: "ana@estoque.com", Password: strings.Repeat("é", 40)})
	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, "deve ter no máximo 72 bytes", apperror.DetailsOf(err)["password"])

	assert.NoError(t, v.Struct(domain.UserRegistration{Name: "Ana", Email: "ana@estoque.com", Password: strings.Repeat("é", 36)}))
}

func TestStruct_QuantityUpperBound(t *testing.T) {
	v := validation.New()

	err := v.Struct(domain.AdjustStockRequest{Type: domain.AdjustmentIn, Quantity: 3_000_000_000, UserID: "0d9c0c2e-6d4a-4d71-9a38-7c0f6a1b2c3d"})
	require.Error(t, err)
	assert.Contains(t, apperror.DetailsOf(err), "quantity")

	assert.Error(t, v.Struct(domain.CreateItemRequest{Name: "Porca", Quantity: intPtr(3_000_000_000)}))
	assert.Error(t, v.Struct(domain.UpdateItemRequest{Quantity: intPtr(3_000_000_000)}))
	assert.NoError(t, v.Struct(domain.CreateItemRequest{Name: "Porca", Quantity: intPtr(domain.MaxQuantity)}))
}

func TestVar_UUID(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Var("id", "0d9c0c2e-6d4a-4d71-9a38-7c0f6a1b2c3d", "uuid"))

	err := v.Var("id", "123", "uuid")
	require.Error(t, err)
	assert.Equal(t, map[string]string{"id": "deve ser um UUID válido"}, apperror.DetailsOf(err))
}
