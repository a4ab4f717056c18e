package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_StatusAndContentType(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusBadRequest, "QueryInvalid", "invalid input")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestWriteError_ResponseBody(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusNotFound, "NotFound", "resource does not exist")

	var body errorResponse
	err := json.NewDecoder(w.Body).Decode(&body)
	require.NoError(t, err)
	assert.Equal(t, "NotFound", body.Type)
	assert.Equal(t, "resource does not exist", body.Msg)
}

func TestWriteError_Unauthorized(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusUnauthorized, "ApiKeyInvalid", "missing token")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body errorResponse
	err := json.NewDecoder(w.Body).Decode(&body)
	require.NoError(t, err)
	assert.Equal(t, "ApiKeyInvalid", body.Type)
	assert.Equal(t, "missing token", body.Msg)
}

func TestWriteError_InternalServerError(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusInternalServerError, "InternalServerError", "internal server error")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorResponse
	err := json.NewDecoder(w.Body).Decode(&body)
	require.NoError(t, err)
	assert.Equal(t, "InternalServerError", body.Type)
	assert.Equal(t, "internal server error", body.Msg)
}

func TestWriteError_EmptyKindAndMsg(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusTeapot, "", "")

	require.Equal(t, http.StatusTeapot, w.Code)

	var body errorResponse
	err := json.NewDecoder(w.Body).Decode(&body)
	require.NoError(t, err)
	assert.Equal(t, "", body.Type)
	assert.Equal(t, "", body.Msg)
}

func TestWriteError_SpecialCharactersInMessage(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusBadRequest, "QueryInvalid", `invalid character '<' in "field"`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorResponse
	err := json.NewDecoder(w.Body).Decode(&body)
	require.NoError(t, err)
	assert.Equal(t, "QueryInvalid", body.Type)
	assert.Equal(t, `invalid character '<' in "field"`, body.Msg)
}

func TestWriteError_ValidJSON(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusBadRequest, "QueryInvalid", "test message")

	var raw map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&raw)
	require.NoError(t, err)

	assert.Len(t, raw, 2)
	assert.Equal(t, "QueryInvalid", raw["type"])
	assert.Equal(t, "test message", raw["msg"])
}

func TestErrorResponse_JSONSerialization(t *testing.T) {
	resp := errorResponse{
		Type: "NotFound",
		Msg:  "item not found",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded errorResponse
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, resp, decoded)
}

func TestErrorResponse_JSONTags(t *testing.T) {
	resp := errorResponse{
		Type: "QueryInvalid",
		Msg:  "test message",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var raw map[string]interface{}
	err = json.Unmarshal(data, &raw)
	require.NoError(t, err)

	_, hasType := raw["type"]
	_, hasMsg := raw["msg"]
	assert.True(t, hasType, "JSON should have 'type' key")
	assert.True(t, hasMsg, "JSON should have 'msg' key")
}
