package models

// Company is an organisation customers belong to
type Company struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Industry  *string `db:"industry" json:"industry"`
	Website   *string `db:"website" json:"website"`
	Address   *string `db:"address" json:"address"`
	City      *string `db:"city" json:"city"`
	State     *string `db:"state" json:"state"`
	ZipCode   *string `db:"zip_code" json:"zip_code"`
	Country   *string `db:"country" json:"country"`
	CreatedAt string  `db:"created_at" json:"created_at"`
	UpdatedAt string  `db:"updated_at" json:"updated_at"`
}

// Customer is a contact, joined with its company name for listing
type Customer struct {
	ID          int64   `db:"id" json:"id"`
	FirstName   string  `db:"first_name" json:"first_name"`
	LastName    string  `db:"last_name" json:"last_name"`
	Email       string  `db:"email" json:"email"`
	Phone       *string `db:"phone" json:"phone"`
	CompanyID   *int64  `db:"company_id" json:"company_id"`
	CompanyName *string `db:"company_name" json:"company_name"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at"`
}

// CustomerInput is the body of POST/PUT /api/customers
type CustomerInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	CompanyID *int64  `json:"company_id,omitempty"`
}

// Valid reports whether all required fields are present
func (in CustomerInput) Valid() bool {
	return in.FirstName != "" && in.LastName != "" && in.Email != ""
}

// LeadStatusNew is the status a lead gets when none is supplied
const LeadStatusNew = "new"

// Lead is a prospective customer not yet tied to a company row
type Lead struct {
	ID        int64   `db:"id" json:"id"`
	FirstName string  `db:"first_name" json:"first_name"`
	LastName  string  `db:"last_name" json:"last_name"`
	Email     string  `db:"email" json:"email"`
	Phone     *string `db:"phone" json:"phone"`
	Company   *string `db:"company" json:"company"`
	Status    string  `db:"status" json:"status"`
	Source    *string `db:"source" json:"source"`
	Notes     *string `db:"notes" json:"notes"`
	CreatedAt string  `db:"created_at" json:"created_at"`
	UpdatedAt string  `db:"updated_at" json:"updated_at"`
}

// LeadInput is the body of POST/PUT /api/leads
type LeadInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Company   *string `json:"company,omitempty"`
	Status    string  `json:"status,omitempty"`
	Source    *string `json:"source,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (in LeadInput) Valid() bool {
	return in.FirstName != "" && in.LastName != "" && in.Email != ""
}

// Deal is a sales opportunity, joined with customer and company names
type Deal struct {
	ID                int64    `db:"id" json:"id"`
	Title             string   `db:"title" json:"title"`
	CustomerID        *int64   `db:"customer_id" json:"customer_id"`
	CustomerName      *string  `db:"customer_name" json:"customer_name"`
	CompanyID         *int64   `db:"company_id" json:"company_id"`
	CompanyName       *string  `db:"company_name" json:"company_name"`
	Value             *float64 `db:"value" json:"value"`
	Stage             string   `db:"stage" json:"stage"`
	Probability       *int64   `db:"probability" json:"probability"`
	ExpectedCloseDate *string  `db:"expected_close_date" json:"expected_close_date"`
	CreatedAt         string   `db:"created_at" json:"created_at"`
	UpdatedAt         string   `db:"updated_at" json:"updated_at"`
}
