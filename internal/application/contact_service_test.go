package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
)

func newContactFixture() (*ContactService, *fakeContactRepo) {
	r := &fakeContactRepo{}
	return NewContactService(r, nil, nil, nil, "", ""), r
}

func submitN(t *testing.T, svc *ContactService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Submit(context.Background(), SubmitInput{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Service: entity.ServiceBranding,
			Message: "I need a complete brand identity for my studio.",
		})
		require.NoError(t, err)
	}
}

func TestSubmitStoresMessageAsNew(t *testing.T) {
	svc, r := newContactFixture()

	m, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "Asha Rao",
		Email:   "Asha@Example.COM",
		Phone:   "+91 98765 43210",
		Service: entity.ServiceLogoDesign,
		Message: "Looking for a logo for my bakery.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, entity.StatusNew, m.Status)
	assert.Equal(t, "asha@example.com", m.Email, "email should be stored lowercase")
	assert.Len(t, r.contacts, 1)
}

func TestSubmitPropagatesStoreError(t *testing.T) {
	svc, r := newContactFixture()
	r.failWith = errors.New("connection refused")

	_, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Service: entity.ServiceOther,
		Message: "Is the store up right now?",
	})
	assert.Error(t, err)
}

func TestListPaginationMeta(t *testing.T) {
	svc, _ := newContactFixture()
	submitN(t, svc, 25)

	items, pg, err := svc.List(context.Background(), repo.ContactFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 10, pg.Limit)
	assert.Equal(t, int64(25), pg.Total)
	assert.Equal(t, 3, pg.Pages)
}

func TestListNormalizesPageAndLimit(t *testing.T) {
	svc, _ := newContactFixture()
	submitN(t, svc, 3)

	items, pg, err := svc.List(context.Background(), repo.ContactFilter{Page: -1, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 10, pg.Limit)
	assert.Equal(t, 1, pg.Pages)
}

func TestListPastEnd(t *testing.T) {
	svc, _ := newContactFixture()
	submitN(t, svc, 3)

	items, pg, err := svc.List(context.Background(), repo.ContactFilter{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(3), pg.Total)
}

func TestUpdateStatus(t *testing.T) {
	svc, r := newContactFixture()
	submitN(t, svc, 1)
	id := r.contacts[0].ID

	m, err := svc.UpdateStatus(context.Background(), id, "read")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRead, m.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, r := newContactFixture()
	submitN(t, svc, 1)

	_, err := svc.UpdateStatus(context.Background(), r.contacts[0].ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc, _ := newContactFixture()

	_, err := svc.UpdateStatus(context.Background(), "missing", "read")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, r := newContactFixture()
	submitN(t, svc, 2)
	id := r.contacts[0].ID

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Len(t, r.contacts, 1)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), repo.ErrNotFound)
}

func TestStats(t *testing.T) {
	svc, r := newContactFixture()
	submitN(t, svc, 3)
	_, err := svc.UpdateStatus(context.Background(), r.contacts[0].ID, "replied")
	require.NoError(t, err)

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.TotalMessages)
	assert.Equal(t, int64(2), st.NewMessages)
	assert.Equal(t, int64(1), st.RepliedMessages)
}

func TestSearchWithoutElasticsearch(t *testing.T) {
	svc, _ := newContactFixture()

	hits, err := svc.Search(context.Background(), "bakery", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
