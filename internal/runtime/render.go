package runtime

import (
	"fmt"
	"strconv"

	"github.com/aretw0/placeholder/pkg/domain"
)

// Prompts asked at each level.
const (
	PromptUserList   = "Enter an ID to see user information or 'e' to exit: "
	PromptUserDetail = "Enter an ID to see post information, 'b' to go back, or 'e' to exit: "
	PromptPostDetail = "Enter 'c' to leave a comment, 'b' to go back, or 'e' to exit: "
)

// Render describes the screen for the current level. It never mutates state.
func (e *Engine) Render(state *domain.State) (*domain.Screen, error) {
	if state == nil {
		return nil, fmt.Errorf("render: nil state")
	}
	s := state.Session

	switch state.Level {
	case domain.LevelUserList:
		table := &domain.Table{Headers: []string{"ID", "Name", "Username"}}
		for i, u := range s.Users {
			table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), u.Name, u.Username})
		}
		return &domain.Screen{
			Level:   state.Level,
			Summary: "Below is a list of all users:",
			Table:   table,
			Prompt:  PromptUserList,
		}, nil

	case domain.LevelUserDetail:
		if s.SelectedUser == nil {
			return nil, fmt.Errorf("render %s: %w", state.Level, domain.ErrNothingSelected)
		}
		table := &domain.Table{Headers: []string{"ID", "Post"}}
		for i, p := range s.VisiblePosts(e.maxPosts) {
			table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), p.Title})
		}
		return &domain.Screen{
			Level: state.Level,
			Summary: fmt.Sprintf("%s has %d posts, %d albums, and %d todos.",
				s.SelectedUser.Name, len(s.UserPosts), s.UserAlbumCount, s.UserTodoCount),
			Table:  table,
			Prompt: PromptUserDetail,
		}, nil

	case domain.LevelPostDetail:
		if s.SelectedPost == nil {
			return nil, fmt.Errorf("render %s: %w", state.Level, domain.ErrNothingSelected)
		}
		lines := make([]string, 0, len(s.PostComments))
		for _, c := range s.PostComments {
			lines = append(lines, fmt.Sprintf("- %s said %s.", c.Email, c.Body))
		}
		return &domain.Screen{
			Level:   state.Level,
			Summary: fmt.Sprintf("Viewing post \"%s\" which has %d comments.", s.SelectedPost.Title, len(s.PostComments)),
			Body:    fmt.Sprintf("Post: \"%s\".", s.SelectedPost.Body),
			Lines:   lines,
			Prompt:  PromptPostDetail,
		}, nil
	}

	return nil, fmt.Errorf("render: unknown level %q", state.Level)
}
