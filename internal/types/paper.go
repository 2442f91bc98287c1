package types

// Paper is a single entry in the loaded collection. Papers are supplied by
// the backend and treated as immutable; the workspace only filters or
// removes them locally.
type Paper struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Conference   string   `json:"conference"`
	Year         int      `json:"year"`
	Abstract     string   `json:"abstract"`
	Keywords     []string `json:"keywords"`
	Citations    int      `json:"citations"`
	Organization string   `json:"organization"`
}
