package runtime_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/placeholder/internal/runtime"
	"github.com/aretw0/placeholder/pkg/adapters/memory"
	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/stretchr/testify/require"
)

// newDataset builds 10 users. User 1 has 7 posts, user 2 has 2 posts, user 3 has none.
// Post 3 (user 1's third post) has 2 comments.
func newDataset() *memory.Source {
	src := memory.NewSource()
	for i := 1; i <= 10; i++ {
		src.Add(domain.ResourceUsers, domain.Record{
			"id": i, "name": fmt.Sprintf("User %d", i), "username": fmt.Sprintf("user%d", i),
		})
	}
	postID := 1
	for _, owner := range []struct{ userID, count int }{{1, 7}, {2, 2}} {
		for j := 0; j < owner.count; j++ {
			src.Add(domain.ResourcePosts, domain.Record{
				"id": postID, "userId": owner.userID,
				"title": fmt.Sprintf("Post %d", postID), "body": fmt.Sprintf("Body %d", postID),
			})
			postID++
		}
	}
	src.Add(domain.ResourceAlbums,
		domain.Record{"id": 1, "userId": 1},
		domain.Record{"id": 2, "userId": 1},
		domain.Record{"id": 3, "userId": 2},
	)
	src.Add(domain.ResourceTodos,
		domain.Record{"id": 1, "userId": 1},
		domain.Record{"id": 2, "userId": 1},
		domain.Record{"id": 3, "userId": 1},
	)
	src.Add(domain.ResourceComments,
		domain.Record{"id": 1, "postId": 3, "email": "a@example.com", "name": "first", "body": "nice"},
		domain.Record{"id": 2, "postId": 3, "email": "b@example.com", "name": "second", "body": "meh"},
	)
	return src
}

// walk starts a session and feeds the answers in order, failing on any error.
func walk(t *testing.T, engine *runtime.Engine, answers ...string) *domain.State {
	t.Helper()
	ctx := context.Background()

	state, err := engine.Start(ctx, "test-session")
	require.NoError(t, err)

	for _, a := range answers {
		state, err = engine.Navigate(ctx, state, a)
		require.NoError(t, err, "answer %q", a)
	}
	return state
}
