package dto

// ThesisMetadataRequest updates the descriptive metadata of a thesis.
// Keywords are free text; each is canonicalized and created or reused
// by its canonical form.
type ThesisMetadataRequest struct {
	Title      string   `json:"title" binding:"required"`
	Abstract   string   `json:"abstract" binding:"required"`
	LanguageID *int64   `json:"language_id"`
	Keywords   []string `json:"keywords" binding:"required,min=1"`
}

// RejectThesisRequest carries the reviewer's formatting comments. Only
// non-empty fields end up in the rejection email.
type RejectThesisRequest struct {
	GeneralComments      string `json:"general_comments"`
	TitlePageComment     string `json:"title_page_comment"`
	SignaturePageComment string `json:"signature_page_comment"`
	FontComment          string `json:"font_comment"`
	SpacingComment       string `json:"spacing_comment"`
	MarginsComment       string `json:"margins_comment"`
	PaginationComment    string `json:"pagination_comment"`
	FormatComment        string `json:"format_comment"`
	GraphsComment        string `json:"graphs_comment"`
	DatingComment        string `json:"dating_comment"`
}
