package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader the way an HTTP server would parse it.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestIsAllowed(t *testing.T) {
	for _, name := range []string{"a.png", "B.JPG", "c.jpeg", "d.gif", "e.webp", "x.y.PNG"} {
		assert.True(t, IsAllowed(name), name)
	}
	for _, name := range []string{"a.pdf", "png", "a.", "", "shell.php"} {
		assert.False(t, IsAllowed(name), name)
	}
}

func TestSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFileStore(root, 1024)
	require.NoError(t, err)
	fs.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	name, err := fs.Save(KindProof, fileHeader(t, "bukti.JPG", []byte("image-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "PROOF_20240102_100405_"), name)
	assert.True(t, strings.HasSuffix(name, ".jpg"), name)

	data, err := os.ReadFile(filepath.Join(root, "proofs", name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, fs.Remove(KindProof, name))
	_, err = os.Stat(filepath.Join(root, "proofs", name))
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, fs.Remove(KindProof, name))
	assert.NoError(t, fs.Remove(KindProof, ""))
}

func TestSave_Rejects(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), 4)
	require.NoError(t, err)

	_, err = fs.Save(KindReceipt, fileHeader(t, "nota.pdf", []byte("x")))
	assert.ErrorIs(t, err, ErrFileType)

	_, err = fs.Save(KindReceipt, nil)
	assert.ErrorIs(t, err, ErrFileType)

	_, err = fs.Save(KindLogo, fileHeader(t, "logo.png", []byte("too-large")))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = fs.Save(Kind("other"), fileHeader(t, "logo.png", []byte("x")))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPath_StripsDirectories(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fs.Root(), "logos", "passwd"), fs.Path(KindLogo, "../../etc/passwd"))
}
