package entity

import "github.com/dilvertex/pipesite-backend/internal/storage"

// Resource is a downloadable document (catalogue, datasheet). The file is
// mandatory at creation; Filename is the display name shown on the site.
type Resource struct {
	ID       string          `json:"id"`
	Filename string          `json:"filename"`
	File     storage.FileRef `json:"file"`
}

func (r *Resource) FileRef() storage.FileRef       { return r.File }
func (r *Resource) SetFileRef(ref storage.FileRef) { r.File = ref }
func (r *Resource) AllRefs() []storage.FileRef     { return []storage.FileRef{r.File} }

func (r *Resource) EntityID() string      { return r.ID }
func (r *Resource) SetEntityID(id string) { r.ID = id }
