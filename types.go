package roster

import "time"

// Person is a single directory entry.
type Person struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateParams contains the fields required to create a person.
// ID and timestamps are assigned by the store.
type CreateParams struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateParams is a sparse patch for an existing person.
// Empty fields are left untouched; an entirely empty patch is rejected
// with ErrNoFields.
type UpdateParams struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// IsEmpty reports whether the patch contains no fields to apply.
func (p UpdateParams) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.PhoneNumber == ""
}

// ListParams configures a people listing.
type ListParams struct {
	// Query, when non-empty, restricts results to people whose name
	// contains the query (case-insensitive) and switches ordering to
	// name ascending. Without a query results are ordered newest first.
	Query string `json:"query,omitempty"`

	// Limit caps the number of results. Zero means DefaultLimit.
	Limit int `json:"limit,omitempty"`
}

// Listing limits.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// StoreStats describes the state of the local store.
type StoreStats struct {
	PeopleCount int    `json:"people_count"`
	DBPath      string `json:"db_path"`
	SchemaVer   string `json:"schema_version"`
}
