package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFailedResponse(t *testing.T) {
	res := NewFailedResponse("", errors.New("boom"))

	assert.False(t, res.Success)
	assert.Equal(t, "Request unsuccessful", res.Message)
	assert.Equal(t, []ApiError{{Field: "Unknown", Message: "boom"}}, res.Errors)
	assert.Nil(t, res.Data)

	res = NewFailedResponse("Invalid query", errors.New("boom"), "dir")
	assert.Equal(t, "Invalid query", res.Message)
	assert.Equal(t, []ApiError{{Field: "dir", Message: "boom"}}, res.Errors)

	res = NewFailedResponse("Invalid query", nil)
	assert.Empty(t, res.Errors)
}

func TestNewFailedResponseRenamesValidationFields(t *testing.T) {
	v := newTestValidator(t)
	err := v.Struct(fontQuery{Ext: "svg", Name: "Lobster"})
	require.Error(t, err)

	res := NewFailedResponse("Invalid query", err, map[string]string{"Ext": "ext"})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "ext", res.Errors[0].Field)
}

func TestResponseFailedWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	ResponseFailed(ctx, http.StatusBadRequest, "Invalid query", errors.New("boom"), "q")

	assert.True(t, ctx.IsAborted())
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid query","errors":[{"field":"q","message":"boom"}]}`, w.Body.String())
}

func TestResponseSuccessWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	ResponseSuccess(ctx, gin.H{"fonts": "/api/latest/fonts"})

	require.Equal(t, http.StatusOK, w.Code)

	var res Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, map[string]any{"fonts": "/api/latest/fonts"}, res.Data)
}
