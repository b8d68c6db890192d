package domain

import "fmt"

// ResourceKind names a remote collection.
type ResourceKind string

const (
	ResourceUsers    ResourceKind = "users"
	ResourcePosts    ResourceKind = "posts"
	ResourceAlbums   ResourceKind = "albums"
	ResourceTodos    ResourceKind = "todos"
	ResourceComments ResourceKind = "comments"
)

// Valid reports whether k is one of the known collections.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourceUsers, ResourcePosts, ResourceAlbums, ResourceTodos, ResourceComments:
		return true
	}
	return false
}

// Filter scopes a collection to a user or a post. Zero values mean "no filter".
type Filter struct {
	UserID int `json:"userId,omitempty" yaml:"userId,omitempty"`
	PostID int `json:"postId,omitempty" yaml:"postId,omitempty"`
}

// ByUser scopes a collection to a user.
func ByUser(id int) Filter { return Filter{UserID: id} }

// ByPost scopes a collection to a post.
func ByPost(id int) Filter { return Filter{PostID: id} }

// IsZero reports whether no scoping is applied.
func (f Filter) IsZero() bool {
	return f.UserID == 0 && f.PostID == 0
}

// String renders the filter as a stable key fragment (e.g. "userId=3").
func (f Filter) String() string {
	switch {
	case f.UserID != 0 && f.PostID != 0:
		return fmt.Sprintf("userId=%d&postId=%d", f.UserID, f.PostID)
	case f.UserID != 0:
		return fmt.Sprintf("userId=%d", f.UserID)
	case f.PostID != 0:
		return fmt.Sprintf("postId=%d", f.PostID)
	}
	return "all"
}

// Record is one untyped element of a remote collection, as decoded from JSON.
type Record map[string]any
