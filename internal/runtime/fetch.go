package runtime

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/placeholder/pkg/domain"
	"golang.org/x/sync/errgroup"
)

type userData struct {
	posts  []domain.Post
	albums int
	todos  int
}

func (e *Engine) fetchUsers(ctx context.Context, sessionID string) ([]domain.User, error) {
	records, err := e.fetch(ctx, sessionID, domain.ResourceUsers, domain.Filter{})
	if err != nil {
		return nil, err
	}
	return decodeCollection[domain.User](domain.ResourceUsers, domain.Filter{}, records)
}

// fetchUserData issues the posts, albums and todos fetches concurrently and waits for all
// of them to settle. The group has no shared context: one failure does not cancel the others.
func (e *Engine) fetchUserData(ctx context.Context, sessionID string, userID int) (userData, error) {
	var (
		data   userData
		g      errgroup.Group
		filter = domain.ByUser(userID)
	)

	g.Go(func() error {
		records, err := e.fetch(ctx, sessionID, domain.ResourcePosts, filter)
		if err != nil {
			return err
		}
		data.posts, err = decodeCollection[domain.Post](domain.ResourcePosts, filter, records)
		return err
	})
	g.Go(func() error {
		records, err := e.fetch(ctx, sessionID, domain.ResourceAlbums, filter)
		data.albums = len(records)
		return err
	})
	g.Go(func() error {
		records, err := e.fetch(ctx, sessionID, domain.ResourceTodos, filter)
		data.todos = len(records)
		return err
	})

	if err := g.Wait(); err != nil {
		return userData{}, err
	}
	return data, nil
}

func (e *Engine) fetchComments(ctx context.Context, sessionID string, postID int) ([]domain.Comment, error) {
	filter := domain.ByPost(postID)
	records, err := e.fetch(ctx, sessionID, domain.ResourceComments, filter)
	if err != nil {
		return nil, err
	}
	return decodeCollection[domain.Comment](domain.ResourceComments, filter, records)
}

// fetch calls the data source, emitting hooks around it and normalising failures to *domain.FetchError.
func (e *Engine) fetch(ctx context.Context, sessionID string, kind domain.ResourceKind, filter domain.Filter) ([]domain.Record, error) {
	start := time.Now()
	e.emitFetch(ctx, &domain.FetchEvent{
		EventBase: domain.EventBase{Timestamp: start, Type: domain.EventFetch, SessionID: sessionID},
		Kind:      kind,
		Filter:    filter,
	})

	records, err := e.source.FetchCollection(ctx, kind, filter)

	e.emitFetchReturn(ctx, &domain.FetchEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFetchReturn, SessionID: sessionID},
		Kind:      kind,
		Filter:    filter,
		Count:     len(records),
		Duration:  time.Since(start),
		Err:       err,
	})

	if err != nil {
		var fe *domain.FetchError
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, &domain.FetchError{Kind: kind, Filter: filter, Err: err}
	}
	return records, nil
}
