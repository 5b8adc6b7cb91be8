package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"ewintr.nl/ytcatalog/model"
	"ewintr.nl/ytcatalog/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo, err := storage.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "handler.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	srv := httptest.NewServer(NewServer(repo, slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(srv.Close)
	return srv
}

const validBody = `{"videoName":"Build a Chat App","youtubeChannel":"Dev Channel","lengthInHours":2.5,"techStack":["React","Node"],"difficulty":"Intermediate","link":"https://youtu.be/abc123"}`

func post(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/projects", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestProjectAPICreateAndList(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/projects")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `[]`, string(body))

	created := post(t, srv, validBody)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	var stored model.Project
	require.NoError(t, json.NewDecoder(created.Body).Decode(&stored))
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, "Build a Chat App", stored.VideoName)
	assert.Equal(t, []string{"React", "Node"}, stored.TechStack)

	resp, err = http.Get(srv.URL + "/projects")
	require.NoError(t, err)
	defer resp.Body.Close()
	var all []model.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	require.Len(t, all, 1)
	assert.Equal(t, stored.ID, all[0].ID)
}

func TestProjectAPICreateErrors(t *testing.T) {
	for _, tc := range []struct {
		name      string
		body      string
		expStatus int
		expError  string
	}{
		{
			name:      "malformed json",
			body:      `{"videoName":`,
			expStatus: http.StatusBadRequest,
		},
		{
			name:      "missing link",
			body:      `{"videoName":"a","youtubeChannel":"b","lengthInHours":1,"difficulty":"Beginner"}`,
			expStatus: http.StatusBadRequest,
			expError:  "link is required",
		},
		{
			name:      "missing length",
			body:      `{"videoName":"a","youtubeChannel":"b","difficulty":"Beginner","link":"l"}`,
			expStatus: http.StatusBadRequest,
			expError:  "lengthInHours is required",
		},
		{
			name:      "unknown difficulty",
			body:      `{"videoName":"a","youtubeChannel":"b","lengthInHours":1,"difficulty":"Expert","link":"l"}`,
			expStatus: http.StatusBadRequest,
			expError:  "difficulty must be one of Beginner, Intermediate, Advanced",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t)
			resp := post(t, srv, tc.body)
			assert.Equal(t, tc.expStatus, resp.StatusCode)

			var env struct {
				Message string `json:"message"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.NotEmpty(t, env.Message)
			if tc.expError != "" {
				assert.Equal(t, tc.expError, env.Error)
			}
		})
	}
}

func TestProjectAPICreateDuplicate(t *testing.T) {
	srv := newTestServer(t)

	require.Equal(t, http.StatusCreated, post(t, srv, validBody).StatusCode)
	assert.Equal(t, http.StatusConflict, post(t, srv, validBody).StatusCode)
}

func TestServerRouting(t *testing.T) {
	srv := newTestServer(t)

	for _, tc := range []struct {
		name      string
		method    string
		path      string
		expStatus int
	}{
		{name: "index", method: http.MethodGet, path: "/", expStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/videos", expStatus: http.StatusNotFound},
		{name: "unknown subpath", method: http.MethodGet, path: "/projects/123", expStatus: http.StatusNotFound},
		{name: "unsupported method", method: http.MethodDelete, path: "/projects", expStatus: http.StatusMethodNotAllowed},
		{name: "post on index", method: http.MethodPost, path: "/", expStatus: http.StatusMethodNotAllowed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.expStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		})
	}
}

type failingRepo struct{}

func (failingRepo) Save(context.Context, model.Project) (model.Project, error) {
	return model.Project{}, errors.New("disk full")
}

func (failingRepo) FindAll(context.Context) ([]model.Project, error) {
	return nil, errors.New("disk full")
}

func TestProjectAPIRepositoryFailure(t *testing.T) {
	api := NewProjectAPI(failingRepo{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestShiftPath(t *testing.T) {
	for _, tc := range []struct {
		path    string
		expHead string
		expTail string
	}{
		{path: "/", expHead: "", expTail: "/"},
		{path: "/projects", expHead: "projects", expTail: "/"},
		{path: "/projects/", expHead: "projects", expTail: "/"},
		{path: "/projects/abc/def", expHead: "projects", expTail: "/abc/def"},
		{path: "projects/../other", expHead: "other", expTail: "/"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			head, tail := ShiftPath(tc.path)
			assert.Equal(t, tc.expHead, head)
			assert.Equal(t, tc.expTail, tail)
		})
	}
}
