package backend

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Uploader performs the direct object-storage transfer of the material
// sub-protocol: a raw PUT of the file bytes to a pre-signed URL. No envelope
// is expected from the store.
type Uploader struct {
	httpClient *http.Client
}

// NewUploader creates a storage uploader. Large transfers get a generous
// timeout independent of the API client's.
func NewUploader() *Uploader {
	return &Uploader{
		httpClient: &http.Client{
			Timeout: 15 * time.Minute,
		},
	}
}

// Upload streams size bytes from r to uploadURL with the given content type.
// onProgress, when non-nil, observes a monotonically non-decreasing sequence
// of whole percentages ending at 100. A non-2xx answer from the store is a
// rejection.
func (u *Uploader) Upload(ctx context.Context, uploadURL, contentType string, size int64, r io.Reader, onProgress func(percent int)) error {
	body := io.Reader(r)
	if onProgress != nil && size > 0 {
		body = &progressReader{r: r, total: size, onProgress: onProgress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	resp, err := u.httpClient.Do(req)
	if err != nil {
		logrus.Warnf("[storage] PUT failed: %v", err)
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.Warnf("[storage] PUT rejected with status %d", resp.StatusCode)
		return &Error{Message: "Upload failed"}
	}
	return nil
}

// progressReader counts bytes as the transport consumes them and reports
// the running percentage. Percentages never decrease and repeats are
// suppressed, so the observer sees a finite monotone sequence.
type progressReader struct {
	r          io.Reader
	total      int64
	sent       int64
	last       int
	onProgress func(percent int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		percent := int(p.sent * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent > p.last {
			p.last = percent
			p.onProgress(percent)
		}
	}
	return n, err
}
