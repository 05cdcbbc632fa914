package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCoursesDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/courses/list", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"data":[{"_id":"c1","title":"Go Basics","price":0}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	courses, err := client.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c1", courses[0].ID)
	assert.Equal(t, "Go Basics", courses[0].Title)
	assert.Zero(t, courses[0].Price)
}

func TestReportedFailureUsesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"course limit reached"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateCourse(context.Background(), CreateCourseInput{Title: "x", Price: 10})
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "course limit reached", be.Message)
}

func TestNon2xxUsesBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, _, err := client.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestNon2xxWithoutBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListCourses(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error in listing all courses", err.Error())
}

func TestMalformedSuccessBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.PurchasedCourses(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error in listing my bought courses", err.Error())
}

func TestTransportFailureIsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL)
	_, err := client.ListCourses(context.Background())
	require.Error(t, err)

	var be *Error
	assert.ErrorAs(t, err, &be, "callers must only ever see *backend.Error")
}

func TestCredentialPassthrough(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"status":true,"data":{"_id":"u1","name":"Sana","email":"s@x.io","role":"student"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := WithCredential(context.Background(), "sid=abc123")
	_, err := client.FetchMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sid=abc123", gotCookie)
}

func TestLoginCapturesCredentialCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc123"})
		w.Write([]byte(`{"status":true,"data":{"_id":"u1","name":"Sana","email":"s@x.io","role":"instructor"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	user, credential, err := client.Login(context.Background(), LoginInput{Email: "s@x.io", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "sid=abc123", credential)
}

func TestMaterialAccessURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/c1/materials/m1/access-url", r.URL.Path)
		w.Write([]byte(`{"success":true,"url":"https://store.example/signed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	url, err := client.MaterialAccessURL(context.Background(), "c1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "https://store.example/signed", url)
}

func TestMaterialAccessURLMissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.MaterialAccessURL(context.Background(), "c1", "m1")
	require.Error(t, err)
	assert.Equal(t, "Failed to get material access URL", err.Error())
}
