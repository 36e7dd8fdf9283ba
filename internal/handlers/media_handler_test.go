// internal/handlers/media_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaListTypeFacet(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAs(t, r, testAdminEmail, testAdminPassword)

	w := doJSON(t, r, http.MethodGet, "/api/admin/media?type=image", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// An unknown type is rejected, not an empty result set.
	w = doJSON(t, r, http.MethodGet, "/api/admin/media?type=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeBody(t, w)["success"].(bool))
}
