package types

type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CreatePostErrors struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (e CreatePostErrors) HasError() bool {
	return e != CreatePostErrors{}
}
