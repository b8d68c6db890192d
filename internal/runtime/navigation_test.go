package runtime_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/placeholder/internal/runtime"
	"github.com/aretw0/placeholder/pkg/adapters/memory"
	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/aretw0/placeholder/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_SelectUser(t *testing.T) {
	src := newDataset()
	engine := runtime.NewEngine(src)
	start := walk(t, engine)

	next, err := engine.Navigate(context.Background(), start, "1")
	require.NoError(t, err)

	assert.Equal(t, domain.LevelUserDetail, next.Level)
	require.NotNil(t, next.Session.SelectedUser)
	assert.Equal(t, start.Session.Users[0], *next.Session.SelectedUser)
	assert.Len(t, next.Session.UserPosts, 7)
	assert.Equal(t, 2, next.Session.UserAlbumCount)
	assert.Equal(t, 3, next.Session.UserTodoCount)
	assert.Equal(t, []domain.Level{domain.LevelUserList, domain.LevelUserDetail}, next.History)

	// The input state is untouched.
	assert.Equal(t, domain.LevelUserList, start.Level)
	assert.Nil(t, start.Session.SelectedUser)

	assert.ElementsMatch(t, []memory.Call{
		{Kind: domain.ResourceUsers},
		{Kind: domain.ResourcePosts, Filter: domain.ByUser(1)},
		{Kind: domain.ResourceAlbums, Filter: domain.ByUser(1)},
		{Kind: domain.ResourceTodos, Filter: domain.ByUser(1)},
	}, src.Calls())
}

func TestNavigate_SelectPostFetchesItsComments(t *testing.T) {
	src := newDataset()
	engine := runtime.NewEngine(src)
	detail := walk(t, engine, "1")

	next, err := engine.Navigate(context.Background(), detail, "3")
	require.NoError(t, err)

	assert.Equal(t, domain.LevelPostDetail, next.Level)
	require.NotNil(t, next.Session.SelectedPost)
	assert.Equal(t, detail.Session.UserPosts[2], *next.Session.SelectedPost)
	assert.Len(t, next.Session.PostComments, 2)

	calls := src.Calls()
	assert.Equal(t, memory.Call{Kind: domain.ResourceComments, Filter: domain.ByPost(3)}, calls[len(calls)-1])
}

func TestNavigate_RejectedInputNeverChangesState(t *testing.T) {
	src := newDataset()
	engine := runtime.NewEngine(src)
	ctx := context.Background()

	states := map[string]*domain.State{
		"list":   walk(t, engine),
		"detail": walk(t, engine, "1"),
		"post":   walk(t, engine, "1", "3"),
	}
	inputs := []string{"x", "11", "0", "", "be", "6", "c1", "1"}

	for name, state := range states {
		before := state.Snapshot()
		callsBefore := len(src.Calls())

		for _, in := range inputs {
			if _, err := engine.Validate(state, in); err == nil {
				continue
			}
			next, err := engine.Navigate(ctx, state, in)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr, "%s: %q", name, in)
			assert.Same(t, state, next, "%s: %q", name, in)
		}

		assert.Equal(t, before, state, name)
		assert.Equal(t, callsBefore, len(src.Calls()), "%s: rejected input must not fetch", name)
	}
}

func TestNavigate_FetchFailureKeepsState(t *testing.T) {
	src := newDataset()
	engine := runtime.NewEngine(src)
	start := walk(t, engine)
	src.FailOn(domain.ResourceAlbums, errors.New("502 bad gateway"))

	next, err := engine.Navigate(context.Background(), start, "1")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Same(t, start, next)
	assert.Equal(t, domain.LevelUserList, next.Level)
	assert.Nil(t, next.Session.SelectedUser)

	// All three fetches were issued and settled even though one failed.
	var kinds []domain.ResourceKind
	for _, c := range src.Calls()[1:] {
		kinds = append(kinds, c.Kind)
	}
	assert.ElementsMatch(t, []domain.ResourceKind{domain.ResourcePosts, domain.ResourceAlbums, domain.ResourceTodos}, kinds)

	// Retrying the same selection succeeds once the source recovers.
	src.FailOn(domain.ResourceAlbums, nil)
	next, err = engine.Navigate(context.Background(), start, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelUserDetail, next.Level)
}

func TestNavigate_CommentFetchFailure(t *testing.T) {
	src := newDataset()
	engine := runtime.NewEngine(src)
	detail := walk(t, engine, "1")
	src.FailOn(domain.ResourceComments, errors.New("timeout"))

	next, err := engine.Navigate(context.Background(), detail, "3")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Same(t, detail, next)
	assert.Nil(t, next.Session.SelectedPost)
}

func TestNavigate_UserDataFetchedConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(3)
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	base := newDataset()
	src := ports.DataSourceFunc(func(ctx context.Context, kind domain.ResourceKind, filter domain.Filter) ([]domain.Record, error) {
		if kind != domain.ResourceUsers {
			started.Done()
			select {
			case <-allStarted:
			case <-time.After(2 * time.Second):
				return nil, errors.New("fetches were not concurrent")
			}
		}
		return base.FetchCollection(ctx, kind, filter)
	})

	engine := runtime.NewEngine(src)
	next, err := engine.Navigate(context.Background(), walk(t, engine), "2")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelUserDetail, next.Level)
	assert.Len(t, next.Session.UserPosts, 2)
}

func TestNavigate_Back(t *testing.T) {
	src := newDataset()
	engine := runtime.NewEngine(src)
	ctx := context.Background()

	for _, path := range [][]string{{"1"}, {"1", "3"}} {
		state := walk(t, engine, path...)
		callsBefore := len(src.Calls())

		next, err := engine.Navigate(ctx, state, "b")
		require.NoError(t, err)

		assert.Equal(t, domain.LevelUserList, next.Level)
		assert.Nil(t, next.Session.SelectedUser)
		assert.Nil(t, next.Session.SelectedPost)
		assert.Empty(t, next.Session.UserPosts)
		assert.Empty(t, next.Session.PostComments)
		assert.Len(t, next.Session.Users, 10)
		assert.Equal(t, callsBefore, len(src.Calls()), "back must not fetch")
	}
}

func TestNavigate_BackAtUserListStays(t *testing.T) {
	engine := runtime.NewEngine(newDataset())
	next, err := engine.Navigate(context.Background(), walk(t, engine), "B")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelUserList, next.Level)
}

func TestNavigate_Exit(t *testing.T) {
	engine := runtime.NewEngine(newDataset())
	ctx := context.Background()

	for _, path := range [][]string{{}, {"1"}, {"1", "3"}} {
		state := walk(t, engine, path...)
		next, err := engine.Navigate(ctx, state, "e")
		require.NoError(t, err)
		assert.True(t, next.Terminated())
		assert.Equal(t, state.Level, next.Level)

		_, err = engine.Navigate(ctx, next, "1")
		assert.Error(t, err, "terminated sessions accept no input")
	}
}

func TestNavigate_CommentSubFlow(t *testing.T) {
	engine := runtime.NewEngine(newDataset())
	ctx := context.Background()
	post := walk(t, engine, "1", "3")
	require.Len(t, post.Session.PostComments, 2)

	awaiting, err := engine.Navigate(ctx, post, "c")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingComment, awaiting.Status)
	assert.Equal(t, domain.LevelPostDetail, awaiting.Level)

	_, err = engine.Navigate(ctx, awaiting, "not a draft")
	assert.ErrorIs(t, err, runtime.ErrUnsupportedInput)

	done, err := engine.Navigate(ctx, awaiting, domain.CommentDraft{Email: "me@example.com", Title: "Hello", Body: "Great post"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, done.Status)
	assert.Equal(t, domain.LevelPostDetail, done.Level)
	require.Len(t, done.Session.PostComments, 3)
	assert.Equal(t, domain.Comment{
		PostID: done.Session.SelectedPost.ID,
		ID:     3,
		Email:  "me@example.com",
		Name:   "Hello",
		Body:   "Great post",
	}, done.Session.PostComments[2])

	// Earlier snapshots are untouched.
	assert.Len(t, awaiting.Session.PostComments, 2)
}

func TestNavigate_CommentsResetWhenPostChanges(t *testing.T) {
	engine := runtime.NewEngine(newDataset())
	ctx := context.Background()

	state := walk(t, engine, "1", "3", "c")
	state, err := engine.Navigate(ctx, state, domain.CommentDraft{Email: "x", Title: "y", Body: "z"})
	require.NoError(t, err)
	require.Len(t, state.Session.PostComments, 3)

	for _, answer := range []string{"b", "1", "3"} {
		state, err = engine.Navigate(ctx, state, answer)
		require.NoError(t, err)
	}
	assert.Len(t, state.Session.PostComments, 2, "local comments do not survive leaving the post")
}

func TestNavigate_UnsupportedInput(t *testing.T) {
	engine := runtime.NewEngine(newDataset())
	_, err := engine.Navigate(context.Background(), walk(t, engine), 42)
	assert.ErrorIs(t, err, runtime.ErrUnsupportedInput)

	_, err = engine.Navigate(context.Background(), nil, "1")
	assert.Error(t, err)
}

// invalidatingSource records Invalidate calls on top of the fixture dataset.
type invalidatingSource struct {
	*memory.Source
	mu      sync.Mutex
	dropped []string
	err     error
}

var _ ports.Invalidator = (*invalidatingSource)(nil)

func (s *invalidatingSource) Invalidate(_ context.Context, kind domain.ResourceKind, filter domain.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropped = append(s.dropped, string(kind)+":"+filter.String())
	return s.err
}

func TestNavigate_CommentInvalidatesCachedComments(t *testing.T) {
	src := &invalidatingSource{Source: newDataset()}
	engine := runtime.NewEngine(src)

	state := walk(t, engine, "1", "3", "c")
	assert.Empty(t, src.dropped, "browsing alone never invalidates")

	_, err := engine.Navigate(context.Background(), state, domain.CommentDraft{Email: "x", Title: "y", Body: "z"})
	require.NoError(t, err)
	assert.Equal(t, []string{string(domain.ResourceComments) + ":" + domain.ByPost(3).String()}, src.dropped)
}

func TestNavigate_CommentSurvivesInvalidationFailure(t *testing.T) {
	src := &invalidatingSource{Source: newDataset(), err: errors.New("redis down")}
	engine := runtime.NewEngine(src)

	state := walk(t, engine, "1", "3", "c")
	next, err := engine.Navigate(context.Background(), state, domain.CommentDraft{Email: "x", Title: "y", Body: "z"})
	require.NoError(t, err)
	assert.Len(t, next.Session.PostComments, 3)
	assert.Len(t, src.dropped, 1)
}
