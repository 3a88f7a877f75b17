package entity

// Video is an embedded promotional video; the clip itself is hosted
// externally, so only its URL is stored.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	Date        string `json:"date"` // YYYY-MM-DD
}

func (v *Video) EntityID() string      { return v.ID }
func (v *Video) SetEntityID(id string) { v.ID = id }
