package dto

// NewNote is the body accepted by POST /api/notes.
type NewNote struct {
	Content   string `json:"content"`
	Important bool   `json:"important"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
