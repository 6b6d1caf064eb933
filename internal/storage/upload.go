package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/zaqqye/linkbio/internal/logger"
	"github.com/zaqqye/linkbio/internal/utils"
)

var (
	ErrEmptyFile = errors.New("file is empty")
	ErrTooLarge  = errors.New("file is too large")
	ErrNotImage  = errors.New("only image uploads are allowed")
)

// Upload describes a stored file.
type Upload struct {
	Name string
	URL  string
	Size int64
	MIME string
}

// Uploader validates images and writes them to a Storage.
type Uploader struct {
	storage   Storage
	urlPrefix string
	maxBytes  int64
	now       func() time.Time
}

func NewUploader(s Storage, urlPrefix string, maxBytes int64) *Uploader {
	return &Uploader{
		storage:   s,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

// Save stores the content of r under a generated name derived from the
// upload time and the original extension.
func (u *Uploader) Save(filename string, r io.Reader) (Upload, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return Upload{}, ErrEmptyFile
	}
	if n > u.maxBytes {
		return Upload{}, fmt.Errorf("%w: limit is %s", ErrTooLarge, humanize.IBytes(uint64(u.maxBytes)))
	}

	mt := mimetype.Detect(buf.Bytes())
	if !strings.HasPrefix(mt.String(), "image/") {
		return Upload{}, fmt.Errorf("%w: got %s", ErrNotImage, mt.String())
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = mt.Extension()
	}
	suffix, err := utils.RandomCode(6)
	if err != nil {
		return Upload{}, err
	}
	name := fmt.Sprintf("%d-%s%s", u.now().UnixMilli(), suffix, ext)

	size, err := u.storage.Put(name, &buf)
	if err != nil {
		return Upload{}, err
	}
	logger.Info("stored upload",
		zap.String("name", name),
		zap.String("mime", mt.String()),
		zap.String("size", humanize.Bytes(uint64(size))))

	return Upload{
		Name: name,
		URL:  u.urlPrefix + "/" + name,
		Size: size,
		MIME: mt.String(),
	}, nil
}

// Discard removes a file stored by Save.
func (u *Uploader) Discard(name string) error {
	return u.storage.Delete(name)
}
