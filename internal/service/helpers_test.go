package service_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Maspur102/elokalfa/internal/service"
	"github.com/Maspur102/elokalfa/internal/storage"
	"github.com/Maspur102/elokalfa/internal/ws"

	"github.com/stretchr/testify/require"
)

var (
	cashier = service.Actor{UserID: 2, Username: "kasir1", Role: "CASHIER"}
	admin   = service.Actor{UserID: 1, Username: "admin", Role: "ADMIN"}
)

// fixedNow is 2024-01-02 10:04:05 WIB.
func fixedNow() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ws.Event
}

func (p *recordingPublisher) Publish(e ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func newFileStore(t *testing.T) (*storage.FileStore, string) {
	t.Helper()
	root := t.TempDir()
	fs, err := storage.NewFileStore(root, 1<<20)
	require.NoError(t, err)
	return fs, root
}

func filesIn(t *testing.T, root string, kind storage.Kind) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(root, string(kind)))
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func upload(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("proof_image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["proof_image"][0]
}
