package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayvista/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testCookieOptions() CookieOptions {
	return NewCookieOptions(false, 365*24*time.Hour)
}

func TestAuthHandler_login(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 365*24*time.Hour)
	handler := NewAuthHandler(tokens, testCookieOptions())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]any{"email": "alice@example.com"})
	c.Request = httptest.NewRequest("POST", "/jwt", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response["success"])

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)

	claims, err := tokens.Verify(cookies[0].Value)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestAuthHandler_logout(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 365*24*time.Hour)
	handler := NewAuthHandler(tokens, testCookieOptions())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/logout", nil)

	handler.logout(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response["success"])

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

// Set and clear must carry identical Secure/HttpOnly attributes.
func TestCookieOptions_setAndClearMatch(t *testing.T) {
	opts := NewCookieOptions(true, time.Hour)

	gin.SetMode(gin.TestMode)

	wSet := httptest.NewRecorder()
	cSet, _ := gin.CreateTestContext(wSet)
	cSet.Request = httptest.NewRequest("POST", "/jwt", nil)
	opts.set(cSet, "some-token")

	wClear := httptest.NewRecorder()
	cClear, _ := gin.CreateTestContext(wClear)
	cClear.Request = httptest.NewRequest("GET", "/logout", nil)
	opts.clear(cClear)

	set := wSet.Result().Cookies()[0]
	clear := wClear.Result().Cookies()[0]

	assert.Equal(t, set.Name, clear.Name)
	assert.Equal(t, set.Secure, clear.Secure)
	assert.Equal(t, set.HttpOnly, clear.HttpOnly)
	assert.Equal(t, set.Path, clear.Path)
}
