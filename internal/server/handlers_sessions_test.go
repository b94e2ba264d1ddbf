package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockview/mockview/internal/domain"
)

func TestCreateSession(t *testing.T) {
	user := testUser()
	session := testSession(user.ID)
	app := &stubApp{
		createSession: func(_ context.Context, userID uuid.UUID, role, difficulty string) (*domain.Session, error) {
			assert.Equal(t, user.ID, userID)
			assert.Equal(t, "backend engineer", role)
			assert.Equal(t, "medium", difficulty)
			return session, nil
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodPost, "/api/sessions",
		`{"role":"backend engineer","difficulty":"medium"}`, authToken(t, srv, user.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[sessionResponse](t, rec)
	assert.Equal(t, session.ID.String(), body.ID)
	assert.Equal(t, "created", body.Status)
}

func TestCreateSession_RejectsUnknownDifficulty(t *testing.T) {
	user := testUser()
	srv := newTestServer(t, &stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/sessions",
		`{"role":"backend engineer","difficulty":"impossible"}`, authToken(t, srv, user.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSessions(t *testing.T) {
	user := testUser()
	app := &stubApp{
		listSessions: func(context.Context, uuid.UUID) ([]*domain.Session, error) {
			return []*domain.Session{testSession(user.ID), testSession(user.ID)}, nil
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodGet, "/api/sessions", "", authToken(t, srv, user.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[[]sessionResponse](t, rec)
	assert.Len(t, body, 2)
}

func TestGetSession_NotFound(t *testing.T) {
	user := testUser()
	app := &stubApp{
		getSession: func(context.Context, uuid.UUID, uuid.UUID) (*domain.Session, error) {
			return nil, domain.ErrSessionNotFound
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodGet, "/api/sessions/"+uuid.NewString(), "", authToken(t, srv, user.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSession_InvalidID(t *testing.T) {
	user := testUser()
	srv := newTestServer(t, &stubApp{})

	rec := doRequest(srv, http.MethodGet, "/api/sessions/not-a-uuid", "", authToken(t, srv, user.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSession_StartAndComplete(t *testing.T) {
	user := testUser()
	session := testSession(user.ID)

	started := false
	completed := false
	app := &stubApp{
		startSession: func(context.Context, uuid.UUID, uuid.UUID) (*domain.Session, error) {
			started = true
			session.Status = domain.SessionActive
			return session, nil
		},
		complete: func(context.Context, uuid.UUID, uuid.UUID) (*domain.Session, error) {
			completed = true
			session.Status = domain.SessionCompleted
			return session, nil
		},
	}
	srv := newTestServer(t, app)
	token := authToken(t, srv, user.ID)

	rec := doRequest(srv, http.MethodPatch, "/api/sessions/"+session.ID.String(),
		`{"action":"start"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, started)
	assert.Equal(t, "active", decodeBody[sessionResponse](t, rec).Status)

	rec = doRequest(srv, http.MethodPatch, "/api/sessions/"+session.ID.String(),
		`{"action":"complete"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, completed)

	rec = doRequest(srv, http.MethodPatch, "/api/sessions/"+session.ID.String(),
		`{"action":"pause"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSession_CompletedConflict(t *testing.T) {
	user := testUser()
	app := &stubApp{
		startSession: func(context.Context, uuid.UUID, uuid.UUID) (*domain.Session, error) {
			return nil, domain.ErrSessionCompleted
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodPatch, "/api/sessions/"+uuid.NewString(),
		`{"action":"start"}`, authToken(t, srv, user.ID))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteSession(t *testing.T) {
	user := testUser()
	deleted := false
	app := &stubApp{
		deleteSession: func(context.Context, uuid.UUID, uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodDelete, "/api/sessions/"+uuid.NewString(), "", authToken(t, srv, user.ID))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, deleted)
}
