package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/aretw0/placeholder/pkg/ports"
)

// ErrUnsupportedInput is returned when Navigate receives an input of the wrong type for the state.
var ErrUnsupportedInput = errors.New("unsupported input")

// Navigate applies one answer to state and returns the next state.
//
// While Status is StatusActive, input must be the raw menu answer (string). Invalid answers
// return the unchanged state and a *domain.ValidationError. Fetch failures return the
// unchanged state and an error wrapping domain.ErrFetchFailed; nothing is mutated.
//
// While Status is StatusAwaitingComment, input must be a domain.CommentDraft.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input any) (*domain.State, error) {
	if state == nil {
		return nil, fmt.Errorf("navigate: nil state")
	}

	switch state.Status {
	case domain.StatusTerminated:
		return state, fmt.Errorf("navigate: session %s already terminated", state.SessionID)
	case domain.StatusAwaitingComment:
		draft, ok := input.(domain.CommentDraft)
		if !ok {
			return state, fmt.Errorf("%w: expected comment draft, got %T", ErrUnsupportedInput, input)
		}
		return e.appendComment(ctx, state, draft)
	}

	raw, ok := input.(string)
	if !ok {
		return state, fmt.Errorf("%w: expected menu answer, got %T", ErrUnsupportedInput, input)
	}

	cmd, err := e.Validate(state, raw)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			e.emitInputRejected(ctx, state, raw, verr.Message)
		}
		return state, err
	}

	switch cmd.Kind {
	case CommandExit:
		next := state.Snapshot()
		next.Status = domain.StatusTerminated
		e.emitLevelLeave(ctx, next.SessionID, next.Level)
		e.logger.Debug("exit requested", "session_id", next.SessionID, "level", next.Level)
		return next, nil

	case CommandBack:
		next := state.Snapshot()
		clearSelection(next.Session)
		return e.transitionTo(ctx, next, domain.LevelUserList), nil

	case CommandComment:
		next := state.Snapshot()
		next.Status = domain.StatusAwaitingComment
		return next, nil
	}

	switch state.Level {
	case domain.LevelUserList:
		return e.selectUser(ctx, state, cmd.Index)
	case domain.LevelUserDetail:
		return e.selectPost(ctx, state, cmd.Index)
	}
	return state, fmt.Errorf("navigate: no selection at level %s", state.Level)
}

// selectUser fetches the user's data and only then builds the UserDetail state.
func (e *Engine) selectUser(ctx context.Context, state *domain.State, index int) (*domain.State, error) {
	user := state.Session.Users[index]

	data, err := e.fetchUserData(ctx, state.SessionID, user.ID)
	if err != nil {
		e.logger.Warn("user selection aborted", "session_id", state.SessionID, "user_id", user.ID, "err", err)
		return state, err
	}

	next := state.Snapshot()
	clearSelection(next.Session)
	next.Session.SelectedUser = &user
	next.Session.UserPosts = data.posts
	next.Session.UserAlbumCount = data.albums
	next.Session.UserTodoCount = data.todos

	return e.transitionTo(ctx, next, domain.LevelUserDetail), nil
}

// selectPost fetches the post's comments and only then builds the PostDetail state.
func (e *Engine) selectPost(ctx context.Context, state *domain.State, index int) (*domain.State, error) {
	post := state.Session.VisiblePosts(e.maxPosts)[index]

	comments, err := e.fetchComments(ctx, state.SessionID, post.ID)
	if err != nil {
		e.logger.Warn("post selection aborted", "session_id", state.SessionID, "post_id", post.ID, "err", err)
		return state, err
	}

	next := state.Snapshot()
	next.Session.SelectedPost = &post
	next.Session.PostComments = comments

	return e.transitionTo(ctx, next, domain.LevelPostDetail), nil
}

// appendComment adds a local comment to the selected post. Nothing is sent upstream, but a
// caching source drops the post's comments so the next visit reads them fresh.
func (e *Engine) appendComment(ctx context.Context, state *domain.State, draft domain.CommentDraft) (*domain.State, error) {
	if state.Level != domain.LevelPostDetail || state.Session.SelectedPost == nil {
		return state, fmt.Errorf("append comment at %s: %w", state.Level, domain.ErrNothingSelected)
	}

	next := state.Snapshot()
	comment := domain.Comment{
		PostID: next.Session.SelectedPost.ID,
		ID:     len(next.Session.PostComments) + 1,
		Email:  draft.Email,
		Name:   draft.Title,
		Body:   draft.Body,
	}
	next.Session.PostComments = append(next.Session.PostComments, comment)
	next.Status = domain.StatusActive

	e.emitCommentAdded(ctx, next.SessionID, comment)
	e.invalidateComments(ctx, next.SessionID, comment.PostID)
	return next, nil
}

func (e *Engine) invalidateComments(ctx context.Context, sessionID string, postID int) {
	inv, ok := e.source.(ports.Invalidator)
	if !ok {
		return
	}
	// Logged only: the comment is already in the session.
	if err := inv.Invalidate(ctx, domain.ResourceComments, domain.ByPost(postID)); err != nil {
		e.logger.Warn("comment cache invalidation failed", "session_id", sessionID, "post_id", postID, "err", err)
	}
}

// transitionTo moves next to level, recording history and emitting hooks.
func (e *Engine) transitionTo(ctx context.Context, next *domain.State, level domain.Level) *domain.State {
	e.emitLevelLeave(ctx, next.SessionID, next.Level)
	next.Level = level
	next.Status = domain.StatusActive
	next.History = append(next.History, level)
	e.emitLevelEnter(ctx, next.SessionID, level)
	return next
}

// clearSelection drops everything derived from the selected user and post.
func clearSelection(s *domain.Session) {
	s.SelectedUser = nil
	s.SelectedPost = nil
	s.UserPosts = nil
	s.UserAlbumCount = 0
	s.UserTodoCount = 0
	s.PostComments = nil
}
