package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/model"
	"github.com/syedhisham/live-courses-frontend/internal/notify"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
)

// oversizeMultipart streams a file part just past the upload cap so the body
// limiter trips inside the multipart parser.
func oversizeMultipart(t *testing.T) (io.Reader, string) {
	t.Helper()
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	t.Cleanup(func() { pr.Close() })

	go func() {
		part, err := mw.CreateFormFile("file", "huge.mp4")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		chunk := make([]byte, 1<<20)
		for written := int64(0); written <= service.MaxUploadBytes+2<<20; written += int64(len(chunk)) {
			if _, err := part.Write(chunk); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		mw.Close()
		pw.Close()
	}()
	return pr, mw.FormDataContentType()
}

func TestUploadOversizeBodyReportsSizeMessage(t *testing.T) {
	var backendCalls int64
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&backendCalls, 1)
	}))
	defer backendSrv.Close()

	api := backend.NewClient(backendSrv.URL)
	wizardSvc := service.NewWizardService(api, backend.NewUploader(), service.NewLiveSessionService(api), notify.NewRegistry(nil))
	h := NewWizardHandler(wizardSvc)

	body, contentType := oversizeMultipart(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/wizard/materials", body)
	req.Header.Set("Content-Type", contentType)
	user := &model.UserSession{ID: "u1", Role: model.RoleInstructor}
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserKey, user))

	rec := httptest.NewRecorder()
	h.UploadMaterial(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "File is too large. Max 200MB.", errBody["error"])

	state := wizardSvc.State("u1")
	assert.Equal(t, "File is too large. Max 200MB.", state.Error)
	assert.Zero(t, atomic.LoadInt64(&backendCalls), "oversize bodies must not reach the backend")
}

func TestUploadWithoutFileField(t *testing.T) {
	api := backend.NewClient("http://127.0.0.1:0")
	wizardSvc := service.NewWizardService(api, backend.NewUploader(), service.NewLiveSessionService(api), notify.NewRegistry(nil))
	h := NewWizardHandler(wizardSvc)

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	mw.WriteField("note", "no file here")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/wizard/materials", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	user := &model.UserSession{ID: "u1", Role: model.RoleInstructor}
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserKey, user))

	rec := httptest.NewRecorder()
	h.UploadMaterial(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "Select a file first", errBody["error"])
}
