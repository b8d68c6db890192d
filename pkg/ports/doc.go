/*
Package ports defines the driven ports (interfaces) of the placeholder browser.

These interfaces decouple the navigation engine from the remote API, so the same
engine runs against HTTP, a redis-backed cache, or in-memory fixtures.

# Key Interfaces

  - DataSource: fetches a remote collection, optionally scoped to a user or a post.
  - Invalidator: drops cached collections (implemented by caching decorators).
*/
package ports
