package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validService = `{
	"name": "Logo Design",
	"description": "Create memorable and impactful logos",
	"priceINR": 4150,
	"features": ["Custom Logo Design", "Vector Files"]
}`

func TestCreateService(t *testing.T) {
	r, store := newServiceRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/services", validService)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	require.Len(t, store.items, 1)
	assert.Equal(t, float64(4150), store.items[0].PriceINR)
	assert.True(t, store.items[0].IsActive)
}

func TestCreateServiceZeroPriceAllowed(t *testing.T) {
	r, _ := newServiceRouter()

	body := `{"name":"Consultation","description":"Free intro call","priceINR":0}`
	w, _ := doJSON(t, r, http.MethodPost, "/api/admin/services", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateServiceRejectsNegativePrice(t *testing.T) {
	r, _ := newServiceRouter()

	body := `{"name":"Broken","description":"Bad price","priceINR":-5}`
	w, env := doJSON(t, r, http.MethodPost, "/api/admin/services", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "priceINR")
}

func TestCreateServiceRejectsMissingPrice(t *testing.T) {
	r, _ := newServiceRouter()

	body := `{"name":"No price","description":"Missing price entirely"}`
	w, env := doJSON(t, r, http.MethodPost, "/api/admin/services", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "priceINR")
}

func TestPublicServicesHideInactive(t *testing.T) {
	r, _ := newServiceRouter()
	doJSON(t, r, http.MethodPost, "/api/admin/services", validService)
	doJSON(t, r, http.MethodPost, "/api/admin/services",
		`{"name":"Retired","description":"No longer offered","priceINR":1000,"isActive":false}`)

	w, env := doJSON(t, r, http.MethodGet, "/api/services", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Logo Design", items[0]["name"])
}

func TestUpdateServiceNotFound(t *testing.T) {
	r, _ := newServiceRouter()

	w, env := doJSON(t, r, http.MethodPut, "/api/admin/services/missing", validService)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service not found", env.Message)
}

func TestDeleteService(t *testing.T) {
	r, store := newServiceRouter()
	doJSON(t, r, http.MethodPost, "/api/admin/services", validService)
	id := store.items[0].ID

	w, _ := doJSON(t, r, http.MethodDelete, "/api/admin/services/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.items)
}
