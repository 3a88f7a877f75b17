package entity

// Message is a contact-form submission.
type Message struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Number  string `json:"number"`
	Message string `json:"message"`
}

func (m *Message) EntityID() string      { return m.ID }
func (m *Message) SetEntityID(id string) { m.ID = id }
