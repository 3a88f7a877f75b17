package entity

import "github.com/dilvertex/pipesite-backend/internal/storage"

// News statuses accepted by the API.
const (
	NewsStatusLatest  = "Latest News"
	NewsStatusFeature = "Feature News"
)

// News is a news/event article. Thumbnail is the distinguished first image
// and is required at creation; Photos is the optional gallery.
type News struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Status           string            `json:"status"`
	Date             string            `json:"date"` // YYYY-MM-DD
	ShortDescription string            `json:"shortDescription"`
	LongDescription  string            `json:"longDescription"`
	Thumbnail        storage.FileRef   `json:"thumbnail,omitempty"`
	Photos           []storage.FileRef `json:"photos,omitempty"`
}

func (n *News) FileRef() storage.FileRef       { return n.Thumbnail }
func (n *News) SetFileRef(ref storage.FileRef) { n.Thumbnail = ref }

// AllRefs returns the thumbnail plus every gallery photo.
func (n *News) AllRefs() []storage.FileRef {
	refs := make([]storage.FileRef, 0, len(n.Photos)+1)
	refs = append(refs, n.Thumbnail)
	refs = append(refs, n.Photos...)
	return refs
}

func (n *News) EntityID() string      { return n.ID }
func (n *News) SetEntityID(id string) { n.ID = id }
