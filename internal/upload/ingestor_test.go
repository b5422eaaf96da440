package upload

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contents string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func TestIngestAbsentFile(t *testing.T) {
	root := t.TempDir()
	ing, err := NewIngestor(root)
	require.NoError(t, err)

	path, err := ing.Ingest(nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file may be written for an absent upload")
}

func TestIngestWritesBytesUnchanged(t *testing.T) {
	root := t.TempDir()
	ing, err := NewIngestor(root)
	require.NoError(t, err)

	path, err := ing.Ingest(fileHeader(t, "logo.png", "png-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, PublicPrefix+"/"))

	stored := strings.TrimPrefix(path, PublicPrefix+"/")
	data, err := os.ReadFile(filepath.Join(root, stored))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestIngestPreservesExtensionCase(t *testing.T) {
	root := t.TempDir()
	ing, err := NewIngestor(root)
	require.NoError(t, err)

	path, err := ing.Ingest(fileHeader(t, "photo.JPG", "x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".JPG"), "extension must be kept verbatim, got %q", path)

	path, err = ing.Ingest(fileHeader(t, "noext", "x"))
	require.NoError(t, err)
	assert.NotContains(t, filepath.Base(path), ".")
}

func TestIngestSameMillisecondNamesDiffer(t *testing.T) {
	root := t.TempDir()
	ing, err := NewIngestor(root)
	require.NoError(t, err)

	// freeze the clock so only the random component can differ
	fixed := time.UnixMilli(1_700_000_000_000)
	ing.now = func() time.Time { return fixed }

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		path, err := ing.Ingest(fileHeader(t, "a.png", "x"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filepath.Base(path), fmt.Sprintf("%d-", fixed.UnixMilli())))
		assert.False(t, seen[path], "stored names within one millisecond must differ")
		seen[path] = true
	}
}

func TestIngestWriteFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "media")
	ing, err := NewIngestor(root)
	require.NoError(t, err)

	// removing the media root makes the file create fail
	require.NoError(t, os.RemoveAll(root))

	path, err := ing.Ingest(fileHeader(t, "a.png", "x"))
	assert.ErrorIs(t, err, ErrIngestionFailed)
	assert.Empty(t, path)
}
