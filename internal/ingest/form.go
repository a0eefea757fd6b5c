package ingest

import (
	"fmt"
	"time"

	"mediacatalog/internal/pkg/neparse"
)

// Form is the typed view over one ingested multipart body. Scalar fields
// hold the narrowest inferred value (bool, int64, float64 or string); file
// fields hold staged paths in submission order with duplicates dropped.
//
// Cardinality is explicit at the accessor level: File reads a field as a
// single upload, Files as a list. The field name itself carries no
// singular/plural meaning.
type Form struct {
	fields map[string]any
	files  map[string][]string
}

func newForm() *Form {
	return &Form{
		fields: make(map[string]any),
		files:  make(map[string][]string),
	}
}

func (f *Form) setField(name string, value any) {
	f.fields[name] = value
}

// addFilePath records a staged path under name, skipping exact duplicates.
func (f *Form) addFilePath(name, path string) {
	for _, existing := range f.files[name] {
		if existing == path {
			return
		}
	}
	f.files[name] = append(f.files[name], path)
}

// Has reports whether a scalar field was submitted.
func (f *Form) Has(name string) bool {
	_, ok := f.fields[name]
	return ok
}

// String returns a required scalar field.
func (f *Form) String(name string) (string, error) {
	v, ok := f.fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return scalarToString(v), nil
}

// OptString returns a scalar field, or nil when absent.
func (f *Form) OptString(name string) *string {
	v, ok := f.fields[name]
	if !ok {
		return nil
	}
	s := scalarToString(v)
	return &s
}

// OptBool reads a field as a boolean; absent or unparsable yields nil.
func (f *Form) OptBool(name string) *bool {
	v, ok := f.fields[name]
	if !ok {
		return nil
	}
	if b, isBool := v.(bool); isBool {
		return &b
	}
	s := scalarToString(v)
	return neparse.OptBool(&s)
}

// OptInt32 reads a field as an int32; absent or non-numeric yields nil.
func (f *Form) OptInt32(name string) *int32 {
	v, ok := f.fields[name]
	if !ok {
		return nil
	}
	if n, isInt := v.(int64); isInt {
		i := int32(n)
		return &i
	}
	s := scalarToString(v)
	return neparse.OptInt32(&s)
}

// Int32 returns a required numeric field.
func (f *Form) Int32(name string) (int32, error) {
	n := f.OptInt32(name)
	if n == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return *n, nil
}

// OptTime reads a field as an RFC3339 timestamp; absent or unparsable
// yields nil.
func (f *Form) OptTime(name string) *time.Time {
	v, ok := f.fields[name]
	if !ok {
		return nil
	}
	s := scalarToString(v)
	return neparse.OptTime(&s)
}

// File returns the first staged upload under name, if any.
func (f *Form) File(name string) (string, bool) {
	paths := f.files[name]
	if len(paths) == 0 {
		return "", false
	}
	return paths[0], true
}

// RequiredFile returns the staged upload under name or an error.
func (f *Form) RequiredFile(name string) (string, error) {
	path, ok := f.File(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingFile, name)
	}
	return path, nil
}

// Files returns all staged uploads under name in submission order.
func (f *Form) Files(name string) []string {
	return append([]string(nil), f.files[name]...)
}

func scalarToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int64:
		return fmt.Sprintf("%d", t)
	case float64:
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
