package entity

// Dealer roles accepted by the registration form.
const (
	DealerRoleDealer       = "dealer"
	DealerRoleProjectOwner = "project_owner"
	DealerRoleConstructor  = "constructor"
	DealerRoleDesigner     = "designer"
)

// Product lines a dealer can carry.
const (
	ProductHDPE     = "HDPE"
	ProductLDPE     = "LDPE"
	ProductFittings = "Fitting and Accessories"
)

// Dealer is a partner registration from the dealers page.
type Dealer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Mobile   string   `json:"mobile"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Products []string `json:"products,omitempty"`
	Province string   `json:"province"`
}

func (d *Dealer) EntityID() string      { return d.ID }
func (d *Dealer) SetEntityID(id string) { d.ID = id }
