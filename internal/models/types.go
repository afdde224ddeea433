package models

// Offer represents one job listing as returned by the offers API
type Offer struct {
	Title           string            `json:"title,omitempty"`
	CompanyName     string            `json:"company_name,omitempty"`
	City            string            `json:"city,omitempty"`
	Market          string            `json:"marker_icon"`
	ExperienceLevel string            `json:"experience_level"`
	EmploymentTypes []EmploymentOffer `json:"employment_types"`
}

// EmploymentOffer is one contract option attached to an offer
type EmploymentOffer struct {
	Type   string       `json:"type"`
	Salary *SalaryRange `json:"salary"`
}

// SalaryRange is the disclosed salary of an employment option
type SalaryRange struct {
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Currency string  `json:"currency,omitempty"`
}

// HasSalary reports whether the employment option discloses a salary
func (e EmploymentOffer) HasSalary() bool {
	return e.Salary != nil
}

// Catalog holds the distinct category values seen across all offers
type Catalog struct {
	Markets          []string `json:"markets"`
	ExperienceLevels []string `json:"experience_levels"`
	EmploymentTypes  []string `json:"employment_types"`
}
