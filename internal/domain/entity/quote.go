package entity

// PipeQuote is a quote request submitted from the products page.
type PipeQuote struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (q *PipeQuote) EntityID() string      { return q.ID }
func (q *PipeQuote) SetEntityID(id string) { q.ID = id }
