package dto

// CreateYearRequest adds an academic year.
type CreateYearRequest struct {
	Year string `json:"year" binding:"required,max=5"`
}

// CreateDepartmentRequest adds a department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=190"`
}

// CreateDegreeRequest adds a degree program.
type CreateDegreeRequest struct {
	Abbreviation string `json:"abbreviation" binding:"required,max=20"`
	Name         string `json:"name" binding:"required,max=190"`
}

// CreateLanguageRequest adds a thesis language.
type CreateLanguageRequest struct {
	Code string `json:"code" binding:"required,max=10"`
	Name string `json:"name" binding:"required,max=100"`
}
