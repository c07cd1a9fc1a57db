package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/community-help/portal-api/schema"
)

// asUser injects an already-recognized account, standing in for the
// auth + recognize middleware pair.
func asUser(user *schema.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func testResident() *schema.User {
	return &schema.User{ID: uuid.New(), Name: "Ana", Role: schema.ROLE_RESIDENT}
}

func testHelper() *schema.User {
	return &schema.User{ID: uuid.New(), Name: "Ben", Role: schema.ROLE_HELPER}
}

func testAdmin() *schema.User {
	return &schema.User{ID: uuid.New(), Name: "Root", Role: schema.ROLE_ADMIN}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(payload)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
