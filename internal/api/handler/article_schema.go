package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createArticleRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updateArticleRequest carries no validation tags: both fields are optional,
// and an empty string means "leave the field unchanged".
type updateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
