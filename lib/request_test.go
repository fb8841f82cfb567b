package lib

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"stonex_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAndValidateBodyMissingFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Blue Pearl"}`))

	_, err := ExtractAndValidateBody[structs.CatalogItemRequest](r)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "description", ve.Errors[0].Field)
	assert.Equal(t, "is required", ve.Errors[0].Message)
}

func TestExtractAndValidateBodyRejectsUnknownCategory(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a","description":"b","category":"luxury"}`))

	_, err := ExtractAndValidateBody[structs.CatalogItemRequest](r)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "category", ve.Errors[0].Field)
}

func TestExtractBodyIgnoresUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a","description":"b","color":"bg-gray-900"}`))

	body, err := ExtractAndValidateBody[structs.CatalogItemRequest](r)
	require.NoError(t, err)
	assert.Equal(t, "a", body.Name)
}
