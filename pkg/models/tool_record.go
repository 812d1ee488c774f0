package models

// ToolRecord is the fixed-shape result for one tool URL.
type ToolRecord struct {
	ProductName string `json:"product_name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedin_url"`
	TwitterURL  string `json:"twitter_url"`
	CareersPage string `json:"careers_page"`
	ToolURL     string `json:"tool_url"`
}

// EmailSeparator joins multiple addresses in ToolRecord.Email.
const EmailSeparator = "; "

var header = []string{
	"product_name",
	"company",
	"email",
	"linkedin_url",
	"twitter_url",
	"careers_page",
	"tool_url",
}

// EmptyRecord is the placeholder stored when a tool URL could not be fetched.
func EmptyRecord(toolURL string) ToolRecord {
	return ToolRecord{ToolURL: toolURL}
}

// Header returns the column names in export order.
func (ToolRecord) Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// Row returns the field values in the same order as Header.
func (r ToolRecord) Row() []string {
	return []string{
		r.ProductName,
		r.Company,
		r.Email,
		r.LinkedInURL,
		r.TwitterURL,
		r.CareersPage,
		r.ToolURL,
	}
}

// IsEmpty reports whether the record carries nothing but its tool URL.
func (r ToolRecord) IsEmpty() bool {
	return r == EmptyRecord(r.ToolURL)
}
