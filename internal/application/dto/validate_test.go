package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
)

const validID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

func TestValidate_PrioridadFaltantesAntesQueFormato(t *testing.T) {
	// id malformado y name ausente: gana "faltan campos".
	err := dto.Validate(dto.UpdateStoreRequest{ID: "nope", Address: "x"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	err = dto.Validate(dto.UpdateStoreRequest{ID: "nope", Name: "A", Address: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	assert.NoError(t, dto.Validate(dto.UpdateStoreRequest{ID: validID, Name: "A", Address: "x"}))
}

func TestValidate_Email(t *testing.T) {
	err := dto.Validate(dto.RegisterRequest{Name: "a", Email: "bad@mail", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	err = dto.Validate(dto.UpdateUserRequest{ID: "bad", Name: "a", Email: "bad", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidID, "el ID se revisa antes que el email")
}

func TestValidate_Numericos(t *testing.T) {
	cases := []struct {
		name   string
		amount json.Number
		want   error
	}{
		{"vacío", "", domain.ErrMissingFields},
		{"cero", "0", domain.ErrInvalidNumeric},
		{"negativo", "-5", domain.ErrInvalidNumeric},
		{"no numérico", "abc", domain.ErrInvalidNumeric},
		{"decimal", "10.5", domain.ErrInvalidNumeric},
		{"positivo", "25", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := dto.Validate(dto.TopUpRequest{ID: validID, Amount: tc.amount})
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_StockAceptaCero(t *testing.T) {
	in := dto.CreateItemRequest{Name: "Mug", Price: "10", Stock: "0", StoreID: validID}
	assert.NoError(t, dto.Validate(in))

	in.Price = "0"
	assert.ErrorIs(t, dto.Validate(in), domain.ErrInvalidNumeric)
}

func TestValidate_UpdateItemCamposOpcionales(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.UpdateItemRequest{ID: validID}))
	assert.ErrorIs(t, dto.Validate(dto.UpdateItemRequest{ID: validID, StoreID: "x"}), domain.ErrInvalidID)
	assert.ErrorIs(t, dto.Validate(dto.UpdateItemRequest{ID: validID, Stock: "-1"}), domain.ErrInvalidNumeric)
}

func TestOptionalHelpers(t *testing.T) {
	v, err := dto.OptionalInt64("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = dto.OptionalInt64(" 42 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.EqualValues(t, 42, *v)

	_, err = dto.OptionalInt64("4x")
	assert.ErrorIs(t, err, domain.ErrInvalidNumeric)

	assert.Nil(t, dto.OptionalString("  "))
	assert.Equal(t, "Mug", *dto.OptionalString("Mug"))
}

func TestFieldOf(t *testing.T) {
	err := dto.Validate(dto.UpdateItemRequest{ID: validID, StoreID: "x"})
	assert.Equal(t, "store_id", dto.FieldOf(err))

	err = dto.Validate(dto.PayTransactionRequest{})
	assert.Equal(t, "transaction_id", dto.FieldOf(err))

	assert.Empty(t, dto.FieldOf(domain.ErrInvalidID))
}
