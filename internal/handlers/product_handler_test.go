// internal/handlers/product_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductAdminLifecycle(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAs(t, r, testAdminEmail, testAdminPassword)

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", token, map[string]interface{}{
		"name": "Wall Panels",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	category := decodeBody(t, w)["data"].(map[string]interface{})["category"].(map[string]interface{})
	categoryID := category["id"].(string)

	// Create a product; the slug derives from the name.
	w = doJSON(t, r, http.MethodPost, "/api/admin/products", token, map[string]interface{}{
		"name":        "Ledge Stone Panel",
		"description": "Lightweight artificial stone panel.",
		"category_id": categoryID,
		"tags":        []string{"Interior", "interior"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	product := decodeBody(t, w)["data"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, "ledge-stone-panel", product["slug"])
	productID := product["id"].(string)

	// Public detail page works while active.
	w = doJSON(t, r, http.MethodGet, "/api/products/ledge-stone-panel", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deactivate and the public page disappears, admin still sees it.
	w = doJSON(t, r, http.MethodPatch, "/api/admin/products/"+productID+"/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/ledge-stone-panel", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/products/"+productID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete it.
	w = doJSON(t, r, http.MethodDelete, "/api/admin/products/"+productID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/products/"+productID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductCreateValidation(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAs(t, r, testAdminEmail, testAdminPassword)

	w := doJSON(t, r, http.MethodPost, "/api/admin/products", token, map[string]interface{}{
		"name":        "",
		"description": "Missing a name.",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.False(t, body["success"].(bool))
	assert.NotEmpty(t, body["errors"])
}

func TestPublicProductListHidesInactive(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAs(t, r, testAdminEmail, testAdminPassword)

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", token, map[string]interface{}{
		"name": "Wall Panels",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := decodeBody(t, w)["data"].(map[string]interface{})["category"].(map[string]interface{})["id"].(string)

	active := true
	inactive := false
	for name, isActive := range map[string]*bool{"Visible Panel": &active, "Hidden Panel": &inactive} {
		w = doJSON(t, r, http.MethodPost, "/api/admin/products", token, map[string]interface{}{
			"name":        name,
			"description": "Catalog entry.",
			"category_id": categoryID,
			"is_active":   isActive,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

	items := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "visible-panel", items[0].(map[string]interface{})["slug"])
}

func TestPublicProductListCuratedOrder(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAs(t, r, testAdminEmail, testAdminPassword)

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", token, map[string]interface{}{
		"name": "Wall Panels",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := decodeBody(t, w)["data"].(map[string]interface{})["category"].(map[string]interface{})["id"].(string)

	// The newest product carries the lowest sort_order, so a created_at
	// ordering and the curated ordering disagree on who comes first.
	for _, p := range []struct {
		name      string
		sortOrder int
	}{
		{"Corner Stone", 2},
		{"Slate Panel", 3},
		{"Ledge Stone", 1},
	} {
		time.Sleep(5 * time.Millisecond)
		w = doJSON(t, r, http.MethodPost, "/api/admin/products", token, map[string]interface{}{
			"name":        p.name,
			"description": "Catalog entry.",
			"category_id": categoryID,
			"sort_order":  p.sortOrder,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, items, 3)
	slugs := make([]string, len(items))
	for i, item := range items {
		slugs[i] = item.(map[string]interface{})["slug"].(string)
	}
	assert.Equal(t, []string{"ledge-stone", "corner-stone", "slate-panel"}, slugs)

	// An explicit sort still wins over the curated default.
	w = doJSON(t, r, http.MethodGet, "/api/products?sort=name&order=asc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = decodeBody(t, w)["data"].([]interface{})
	require.Len(t, items, 3)
	assert.Equal(t, "corner-stone", items[0].(map[string]interface{})["slug"])
}

func TestCategoryDeleteGuardedOverHTTP(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAs(t, r, testAdminEmail, testAdminPassword)

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", token, map[string]interface{}{
		"name": "Wall Panels",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := decodeBody(t, w)["data"].(map[string]interface{})["category"].(map[string]interface{})["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/admin/products", token, map[string]interface{}{
		"name":        "Slate Panel",
		"description": "Keeps the category occupied.",
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/categories/"+categoryID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.False(t, body["success"].(bool))
	assert.NotEmpty(t, body["message"])
}
