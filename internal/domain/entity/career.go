package entity

// Job types accepted for a career posting.
const (
	JobTypeFullTime = "Full time"
	JobTypePartTime = "Part time"
)

// Career is an open position listed on the careers page.
type Career struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	JobType     string `json:"jobType"`
	Salary      string `json:"salary"`
	Experience  string `json:"experience"`
	Position    string `json:"position"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD
	Role        string `json:"role"`
	Requirement string `json:"requirement"`
}

func (c *Career) EntityID() string      { return c.ID }
func (c *Career) SetEntityID(id string) { c.ID = id }
