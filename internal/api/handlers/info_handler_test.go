package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewInfoHandler().Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Server is running", body["message"])
	assert.Equal(t, "Connected", body["database"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRootBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", NewInfoHandler().Root)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Portfolio Backend API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "https://github.com/Doja-oual/BackendGraphQLPortfolio", body["documentation"])

	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/graphql", endpoints["graphql"])
	assert.Equal(t, "/health", endpoints["health"])
}
