package upload

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// ErrIngestionFailed is returned when the uploaded bytes could not be
// persisted. Callers must abort before touching the content store.
var ErrIngestionFailed = errors.New("ingestion failed")

// PublicPrefix is the URL prefix under which stored files are served.
const PublicPrefix = "/uploads"

var maxRand = big.NewInt(1_000_000_000)

// Ingestor persists uploaded files under a media root with
// collision-resistant names: millisecond timestamp, a random integer in
// [0, 1e9), and the original extension kept verbatim so content
// negotiation by suffix still works.
//
// The scheme is probabilistic. A name collision silently overwrites, which
// is accepted for single-owner, low-volume use.
type Ingestor struct {
	root string

	// injectable for tests
	now     func() time.Time
	randInt func() (int64, error)
}

func NewIngestor(root string) (*Ingestor, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create media root: %v", ErrIngestionFailed, err)
	}
	return &Ingestor{
		root:    root,
		now:     time.Now,
		randInt: cryptoRandInt,
	}, nil
}

func cryptoRandInt() (int64, error) {
	n, err := rand.Int(rand.Reader, maxRand)
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// Ingest stores the uploaded file and returns its public path. A nil
// header means the form carried no file; that is a valid outcome and
// yields an empty path with nothing written.
func (i *Ingestor) Ingest(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}

	name, err := i.storedName(fh.Filename)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open upload: %v", ErrIngestionFailed, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(i.root, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: create file: %v", ErrIngestionFailed, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: write file: %v", ErrIngestionFailed, err)
	}

	return PublicPrefix + "/" + name, nil
}

func (i *Ingestor) storedName(original string) (string, error) {
	n, err := i.randInt()
	if err != nil {
		return "", fmt.Errorf("%w: random name: %v", ErrIngestionFailed, err)
	}
	return fmt.Sprintf("%d-%d%s", i.now().UnixMilli(), n, filepath.Ext(original)), nil
}
