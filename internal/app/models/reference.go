package models

// Year is an academic year a candidate can register under.
type Year struct {
	ID   int64  `json:"id"`
	Year string `json:"year"`
}

// Department is a university department.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Degree is a degree program (e.g. PhD / Doctor of Philosophy).
type Degree struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// Language is a language a thesis may be written in.
type Language struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
