package category

import (
	"strings"

	"mediacatalog/internal/ingest"
)

// AddCategoryRequest is bound from a multipart form with a single scalar
// field.
type AddCategoryRequest struct {
	Name string `json:"name"`
}

func (r *AddCategoryRequest) BindForm(f *ingest.Form) error {
	name := f.OptString("name")
	if name == nil || strings.TrimSpace(*name) == "" {
		return ErrNameRequired
	}
	r.Name = *name
	return nil
}

type UpdateCategoryRequest struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

func (r *UpdateCategoryRequest) BindForm(f *ingest.Form) error {
	id, err := f.Int32("id")
	if err != nil {
		return err
	}
	name := f.OptString("name")
	if name == nil || strings.TrimSpace(*name) == "" {
		return ErrNameRequired
	}
	r.ID = id
	r.Name = *name
	return nil
}
