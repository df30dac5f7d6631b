package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIErrorDefaultsTo400(t *testing.T) {
	err := NewAPIError("something went wrong", 0)
	assert.Equal(t, 400, err.StatusCode)
	assert.Equal(t, "something went wrong", err.Error())
}

func TestAPIErrorJSONShape(t *testing.T) {
	b, marshalErr := json.Marshal(NewAPIError("User not found", 404))
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"message": "User not found", "status_code": 404}`, string(b))
}
