package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
)

const validSubmission = `{
	"name": "Asha Rao",
	"email": "asha@example.com",
	"phone": "+91 98765 43210",
	"service": "Logo Design",
	"message": "Looking for a logo for my bakery."
}`

func TestSubmitContact(t *testing.T) {
	r, store := newContactRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/contact", validSubmission)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Message sent successfully! I'll get back to you soon.", env.Message)

	var data struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		CreatedAt string `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Asha Rao", data.Name)
	assert.NotEmpty(t, data.ID)
	assert.NotEmpty(t, data.CreatedAt)

	require.Len(t, store.contacts, 1)
	assert.Equal(t, entity.StatusNew, store.contacts[0].Status)
}

func TestSubmitContactValidation(t *testing.T) {
	r, store := newContactRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"A","email":"nope","service":"Murals","message":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "service")
	assert.Contains(t, env.Errors, "message")
	assert.Empty(t, store.contacts, "nothing persisted on validation failure")
}

func TestSubmitContactPhoneOptional(t *testing.T) {
	r, _ := newContactRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Asha Rao","email":"asha@example.com","service":"Other","message":"No phone provided here."}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListMessagesPagination(t *testing.T) {
	r, _ := newContactRouter()
	for i := 0; i < 15; i++ {
		doJSON(t, r, http.MethodPost, "/api/contact", validSubmission)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/admin/messages?page=2&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 5)

	var meta struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Pages int   `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(15), meta.Total)
	assert.Equal(t, 2, meta.Pages)
}

func TestUpdateMessageStatus(t *testing.T) {
	r, store := newContactRouter()
	doJSON(t, r, http.MethodPost, "/api/contact", validSubmission)
	id := store.contacts[0].ID

	w, env := doJSON(t, r, http.MethodPatch, "/api/admin/messages/"+id+"/status", `{"status":"read"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, entity.StatusRead, store.contacts[0].Status)
}

func TestUpdateMessageStatusInvalidValue(t *testing.T) {
	r, store := newContactRouter()
	doJSON(t, r, http.MethodPost, "/api/contact", validSubmission)
	id := store.contacts[0].ID

	w, env := doJSON(t, r, http.MethodPatch, "/api/admin/messages/"+id+"/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status value", env.Message)
}

func TestUpdateMessageStatusNotFound(t *testing.T) {
	r, _ := newContactRouter()

	w, env := doJSON(t, r, http.MethodPatch, "/api/admin/messages/missing/status", `{"status":"read"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", env.Message)
}

func TestDeleteMessage(t *testing.T) {
	r, store := newContactRouter()
	doJSON(t, r, http.MethodPost, "/api/contact", validSubmission)
	id := store.contacts[0].ID

	w, _ := doJSON(t, r, http.MethodDelete, "/api/admin/messages/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.contacts)

	w, env := doJSON(t, r, http.MethodDelete, "/api/admin/messages/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", env.Message)
}

func TestMessageStats(t *testing.T) {
	r, _ := newContactRouter()
	doJSON(t, r, http.MethodPost, "/api/contact", validSubmission)

	w, env := doJSON(t, r, http.MethodGet, "/api/admin/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalMessages int64 `json:"totalMessages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(1), stats.TotalMessages)
}
