// Package ingest drains a multipart request into a per-request staging
// directory and binds the merged field set into a typed request.
//
// Uploaded bytes land under {scratch}/{request-id}/{file-id}/{name} before
// anything touches the database. The staging directory is handed back to the
// caller on success; every failure path deletes it so no temp files outlive
// a rejected request.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"

	"mediacatalog/internal/pkg/fsutil"
	"mediacatalog/internal/pkg/neparse"
)

var (
	// ErrMissingField marks a required scalar field absent from the form.
	ErrMissingField = errors.New("missing required field")
	// ErrMissingFile marks a required upload absent from the form.
	ErrMissingFile = errors.New("missing required file")
	// ErrInvalidEncoding marks a scalar field that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("form field is not valid UTF-8")
	// ErrNotMultipart marks a request without a multipart body.
	ErrNotMultipart = errors.New("request body is not multipart/form-data")
	// ErrPartTooLarge marks a part bigger than the per-part limit. Capped
	// parts are rejected outright; a silently truncated upload would commit
	// as a corrupt asset.
	ErrPartTooLarge = errors.New("multipart part exceeds size limit")
)

// maxPartBytes bounds how much of a single part is buffered in memory.
const maxPartBytes int64 = 256 << 20

// Binder is implemented by typed request structs. BindForm reads fields
// with explicit cardinality and reports the first schema violation.
type Binder interface {
	BindForm(f *Form) error
}

// Engine stages multipart uploads under a process-wide scratch root.
// Staging directories are keyed by a fresh UUID per request, so concurrent
// ingestions never share state.
type Engine struct {
	scratchRoot  string
	maxPartBytes int64
}

func New(scratchRoot string) *Engine {
	return &Engine{scratchRoot: scratchRoot, maxPartBytes: maxPartBytes}
}

// Ingest drains the request body part by part, stages file parts on disk,
// coerces scalar parts into typed values, and binds the result into dst.
//
// On success the returned staging directory still holds the uploaded files;
// the caller moves them out after its own row write commits, then discards
// the directory. On any error the staging directory is already gone.
func (e *Engine) Ingest(r *http.Request, dst Binder) (string, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotMultipart, err)
	}

	stagingDir := filepath.Join(e.scratchRoot, uuid.New().String())
	form, err := e.drain(reader, stagingDir)
	if err != nil {
		discardStaging(stagingDir)
		return "", err
	}

	if err := dst.BindForm(form); err != nil {
		discardStaging(stagingDir)
		return "", err
	}
	return stagingDir, nil
}

func (e *Engine) drain(reader *multipart.Reader, stagingDir string) (*Form, error) {
	form := newForm()
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart part: %w", err)
		}

		name := part.FormName()
		if name == "" {
			part.Close()
			continue
		}

		// Read one byte past the limit so a capped part is distinguishable
		// from a complete one.
		data, err := io.ReadAll(io.LimitReader(part, e.maxPartBytes+1))
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %q: %w", name, err)
		}
		if int64(len(data)) > e.maxPartBytes {
			return nil, fmt.Errorf("%w: %s", ErrPartTooLarge, name)
		}

		if filename := part.FileName(); filename != "" {
			path := filepath.Join(stagingDir, uuid.New().String(), filepath.Base(filename))
			if err := fsutil.SaveFile(path, data); err != nil {
				return nil, fmt.Errorf("stage upload %q: %w", name, err)
			}
			form.addFilePath(name, path)
			continue
		}

		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, name)
		}
		// Last write wins for repeated scalar fields.
		form.setField(name, neparse.InferValue(string(data)))
	}
	return form, nil
}

// Discard deletes a staging directory after commit or rejection. Failures
// are logged, never surfaced: the request outcome is already decided.
func Discard(stagingDir string) {
	discardStaging(stagingDir)
}

func discardStaging(stagingDir string) {
	if stagingDir == "" {
		return
	}
	if err := fsutil.DeleteDirIfExists(stagingDir); err != nil {
		log.Printf("ingest_cleanup_failed dir=%s error=%q", stagingDir, err)
	}
}
