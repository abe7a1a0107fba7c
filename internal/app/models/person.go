package models

// Person is an identity record for a candidate or committee member.
// The external identifiers (netid, orcid, bannerid) are unique when
// present and stored as absent rather than empty string.
type Person struct {
	ID            int64   `json:"id"`
	NetID         *string `json:"netid,omitempty"`
	ORCID         *string `json:"orcid,omitempty"`
	BannerID      *string `json:"bannerid,omitempty"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Middle        string  `json:"middle,omitempty"`
	Email         string  `json:"email"`
	AddressStreet string  `json:"address_street,omitempty"`
	AddressCity   string  `json:"address_city,omitempty"`
	AddressState  string  `json:"address_state,omitempty"`
	AddressZip    string  `json:"address_zip,omitempty"`
	Phone         string  `json:"phone,omitempty"`
}

// NormalizeIdentifiers replaces empty-string external identifiers with
// nil so the unique columns never hold ''.
func (p *Person) NormalizeIdentifiers() {
	p.NetID = dropEmpty(p.NetID)
	p.ORCID = dropEmpty(p.ORCID)
	p.BannerID = dropEmpty(p.BannerID)
}

// HasInstitutionalID reports whether the person carries a netid or an
// ORCID. A candidate cannot be saved for a person without one.
func (p *Person) HasInstitutionalID() bool {
	return (p.NetID != nil && *p.NetID != "") || (p.ORCID != nil && *p.ORCID != "")
}

func dropEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
