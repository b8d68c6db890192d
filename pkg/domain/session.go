package domain

import "slices"

// Session caches the data fetched while drilling down.
// UserPosts, the counts and PostComments are only valid for the current selection.
type Session struct {
	Users          []User
	SelectedUser   *User
	SelectedPost   *Post
	UserPosts      []Post
	UserAlbumCount int
	UserTodoCount  int
	PostComments   []Comment
}

// Clone returns a copy whose slices and selections can be replaced without touching s.
func (s *Session) Clone() *Session {
	if s == nil {
		return &Session{}
	}
	next := *s
	next.Users = slices.Clone(s.Users)
	next.UserPosts = slices.Clone(s.UserPosts)
	next.PostComments = slices.Clone(s.PostComments)
	if s.SelectedUser != nil {
		u := *s.SelectedUser
		next.SelectedUser = &u
	}
	if s.SelectedPost != nil {
		p := *s.SelectedPost
		next.SelectedPost = &p
	}
	return &next
}

// VisiblePosts returns at most limit posts from the head of UserPosts.
func (s *Session) VisiblePosts(limit int) []Post {
	if s == nil {
		return nil
	}
	if limit < 0 || len(s.UserPosts) <= limit {
		return s.UserPosts
	}
	return s.UserPosts[:limit]
}
