package dto

// RegisterCandidateRequest carries the registration form fields: the
// person's identity and contact info plus the program references.
type RegisterCandidateRequest struct {
	NetID         string `json:"netid"`
	ORCID         string `json:"orcid"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Middle        string `json:"middle"`
	Email         string `json:"email" binding:"required,email"`
	AddressStreet string `json:"address_street"`
	AddressCity   string `json:"address_city"`
	AddressState  string `json:"address_state"`
	AddressZip    string `json:"address_zip"`
	Phone         string `json:"phone"`

	YearID       int64 `json:"year_id" binding:"required"`
	DepartmentID int64 `json:"department_id" binding:"required"`
	DegreeID     int64 `json:"degree_id" binding:"required"`

	// SetEmbargo restricts access to the dissertation for two years
	// past the registration year. The flag itself is not persisted.
	SetEmbargo bool `json:"set_embargo"`
}

// CommitteeMemberRequest adds a member to a candidate's committee.
// Exactly one of department_id and affiliation must be supplied.
type CommitteeMemberRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email"`
	Role         string `json:"role" binding:"required"`
	DepartmentID *int64 `json:"department_id"`
	Affiliation  string `json:"affiliation"`
}
