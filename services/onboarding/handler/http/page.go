package http

// pageData feeds the signup flow templates. Errors is keyed by form field
// name, with "form" reserved for errors not tied to a single field.
type pageData struct {
	Email    string
	Code     string
	Username string
	Name     string
	Errors   map[string]string
}

func newPageData() pageData {
	return pageData{Errors: map[string]string{}}
}
