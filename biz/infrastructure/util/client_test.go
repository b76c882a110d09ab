package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/infrastructure/config"
	"campus-show/biz/infrastructure/consts"
	"campus-show/biz/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestClient(t *testing.T, backendURL string) *HttpClient {
	c := &config.Config{}
	c.Api.BackendURL = backendURL
	session := storage.NewSessionStoreAt(filepath.Join(t.TempDir(), "session.json"))
	return NewHttpClient(c, session)
}

func TestSendRequestSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, consts.ContentTypeJson, r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(consts.HeaderRequestId))
		w.Write([]byte(`{"success": true, "courses": [{"id": "c1"}]}`))
	}))
	defer srv.Close()

	data, err := newTestClient(t, srv.URL).ListCourses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data["courses"])
}

func TestSendRequestAttachesSessionToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	require.NoError(t, client.Session.Save(&storage.Session{
		Token: "upstream-token",
		User:  &lms.User{Id: "u1"},
	}))

	_, err := client.ListCourses(context.Background())
	require.NoError(t, err)
}

func TestEnrollmentLookupPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"success": true, "enrollments": []}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	// 课程视角和报名视角是两个不同的上游端点，不能混用
	_, err := client.GetCourseEnrollments(context.Background(), "c1")
	require.NoError(t, err)
	_, err = client.GetEnrollmentsByCourse(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/courses/c1/enrollments",
		"/enrollments/courses/c1/enrollments",
	}, paths)
}

func TestSendRequestBusinessFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "课程不存在"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetCourse(context.Background(), "missing")
	require.Error(t, err)
	s, _ := status.FromError(err)
	assert.Equal(t, codes.Unknown, s.Code())
	assert.Equal(t, "课程不存在", s.Message())
}

func TestSendRequestStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, consts.ErrNotAuthentication},
		{"forbidden", http.StatusForbidden, `{}`, consts.ErrForbidden},
		{"not found", http.StatusNotFound, `{}`, consts.ErrNotFound},
		{"bad request without message", http.StatusBadRequest, `{}`, consts.ErrInvalidParams},
		{"upstream error", http.StatusInternalServerError, `{}`, consts.ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).ListCourses(context.Background())
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestSendRequestBadRequestWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "标题不能为空"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).CreateCourse(context.Background(), map[string]any{})
	require.Error(t, err)
	s, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, s.Code())
	assert.Equal(t, "标题不能为空", s.Message())
}
