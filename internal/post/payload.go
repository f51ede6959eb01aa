package post

type CreateReq struct {
	Text       string `json:"text"`
	Media      string `json:"media"`
	Visibility string `json:"visibility"`
}
