package domain

// User is a remote account. Users are selected by their 1-based position in the list.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Post belongs to a User.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment belongs to a Post. Name holds the comment title.
type Comment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Body   string `json:"body"`
}

// CommentDraft is the free text collected by the comment-authoring sub-flow.
type CommentDraft struct {
	Email string
	Title string
	Body  string
}
