package ports

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ContractDataset returns the collections a DataSource under contract test must serve.
// Two users; user 1 owns posts 1-2, user 2 owns post 3; post 1 has two comments.
func ContractDataset() map[domain.ResourceKind][]domain.Record {
	return map[domain.ResourceKind][]domain.Record{
		domain.ResourceUsers: {
			{"id": 1, "name": "Leanne Graham", "username": "Bret"},
			{"id": 2, "name": "Ervin Howell", "username": "Antonette"},
		},
		domain.ResourcePosts: {
			{"id": 1, "userId": 1, "title": "first", "body": "one"},
			{"id": 2, "userId": 1, "title": "second", "body": "two"},
			{"id": 3, "userId": 2, "title": "third", "body": "three"},
		},
		domain.ResourceAlbums: {
			{"id": 1, "userId": 1, "title": "album"},
		},
		domain.ResourceTodos: {
			{"id": 1, "userId": 1, "title": "todo", "completed": false},
			{"id": 2, "userId": 2, "title": "todo", "completed": true},
		},
		domain.ResourceComments: {
			{"id": 1, "postId": 1, "email": "a@example.com", "name": "hi", "body": "x"},
			{"id": 2, "postId": 1, "email": "b@example.com", "name": "yo", "body": "y"},
			{"id": 3, "postId": 3, "email": "c@example.com", "name": "hey", "body": "z"},
		},
	}
}

// RunDataSourceContract runs a suite of tests to verify that a DataSource implementation
// serves ContractDataset with the expected scoping. The source must already be seeded.
func RunDataSourceContract(t *testing.T, src DataSource) {
	ctx := context.Background()

	ids := func(records []domain.Record) []string {
		out := make([]string, 0, len(records))
		for _, r := range records {
			out = append(out, fmt.Sprint(r["id"]))
		}
		return out
	}

	t.Run("All Users", func(t *testing.T) {
		users, err := src.FetchCollection(ctx, domain.ResourceUsers, domain.Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids(users))
		assert.Equal(t, "Bret", users[0]["username"])
	})

	t.Run("Posts By User", func(t *testing.T) {
		posts, err := src.FetchCollection(ctx, domain.ResourcePosts, domain.ByUser(1))
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids(posts))
	})

	t.Run("Albums And Todos By User", func(t *testing.T) {
		albums, err := src.FetchCollection(ctx, domain.ResourceAlbums, domain.ByUser(2))
		require.NoError(t, err)
		assert.Empty(t, albums)

		todos, err := src.FetchCollection(ctx, domain.ResourceTodos, domain.ByUser(2))
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, ids(todos))
	})

	t.Run("Comments By Post", func(t *testing.T) {
		comments, err := src.FetchCollection(ctx, domain.ResourceComments, domain.ByPost(1))
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids(comments))
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		_, err := src.FetchCollection(ctx, domain.ResourceKind("photos"), domain.Filter{})
		assert.ErrorIs(t, err, domain.ErrUnknownResource)
	})
}
