package dto

type CreatePostDto struct {
	Text string `json:"text"`
	Img  string `json:"img"`
}

type CommentDto struct {
	Text string `json:"text" binding:"required,max=280"`
}
