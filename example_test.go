package placeholder_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/placeholder"
	"github.com/aretw0/placeholder/pkg/adapters/memory"
	"github.com/aretw0/placeholder/pkg/domain"
)

// ExampleNew drives the browser programmatically with an in-memory dataset.
func ExampleNew() {
	src := memory.NewSourceFrom(map[domain.ResourceKind][]domain.Record{
		domain.ResourceUsers: {{"id": 1, "name": "Leanne Graham", "username": "Bret"}},
		domain.ResourcePosts: {{"id": 1, "userId": 1, "title": "sunt aut facere", "body": "quia et suscipit"}},
		domain.ResourceTodos: {{"id": 1, "userId": 1}},
	})

	b, err := placeholder.New(src)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	state, err := b.Start(ctx, "example")
	if err != nil {
		log.Fatal(err)
	}

	for _, answer := range []string{"1", "1"} {
		if state, err = b.Navigate(ctx, state, answer); err != nil {
			log.Fatal(err)
		}
		screen, _ := b.Render(state)
		fmt.Println(screen.Summary)
	}

	// Output:
	// Leanne Graham has 1 posts, 0 albums, and 1 todos.
	// Viewing post "sunt aut facere" which has 0 comments.
}
