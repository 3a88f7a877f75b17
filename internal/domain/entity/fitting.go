package entity

import "github.com/dilvertex/pipesite-backend/internal/storage"

// Fitting is a product fitting with its catalogue image. The image is
// mandatory at creation.
type Fitting struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	File storage.FileRef `json:"file"`
}

func (f *Fitting) FileRef() storage.FileRef       { return f.File }
func (f *Fitting) SetFileRef(ref storage.FileRef) { f.File = ref }
func (f *Fitting) AllRefs() []storage.FileRef     { return []storage.FileRef{f.File} }

func (f *Fitting) EntityID() string      { return f.ID }
func (f *Fitting) SetEntityID(id string) { f.ID = id }
