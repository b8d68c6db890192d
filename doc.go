/*
Package placeholder is an interactive terminal browser for a JSONPlaceholder-style REST API.

It drills down from the user list to a user's posts and from a post to its comments,
driven by numeric and single-letter menu answers.

# Architecture

The navigator (internal/runtime) is a pure state machine: it validates an answer, fetches
what the next level needs through a ports.DataSource, and returns a new domain.State
snapshot. The runner (pkg/runner) owns the loop and all IO:

	render -> prompt -> validate -> navigate (may fetch) -> render

Data sources are adapters: the HTTP client (pkg/adapters/http), an in-memory source loaded
from fixtures (pkg/adapters/memory), and a Redis read-through cache that wraps either
(pkg/adapters/redis).

# Usage

	placeholder run                      # browse https://jsonplaceholder.typicode.com
	placeholder run --fixtures data.yaml # browse offline
	placeholder users --plain            # print the user list and exit
*/
package placeholder
