package entity

import "github.com/dilvertex/pipesite-backend/internal/storage"

// Employee is a staff profile shown on the site. The photo is optional.
type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	JobTitle   string          `json:"jobTitle"`
	Email      string          `json:"email"`
	Telegram   string          `json:"telegram"`
	File       storage.FileRef `json:"file,omitempty"`
}

func (e *Employee) FileRef() storage.FileRef       { return e.File }
func (e *Employee) SetFileRef(ref storage.FileRef) { e.File = ref }
func (e *Employee) AllRefs() []storage.FileRef     { return []storage.FileRef{e.File} }

func (e *Employee) EntityID() string      { return e.ID }
func (e *Employee) SetEntityID(id string) { e.ID = id }
