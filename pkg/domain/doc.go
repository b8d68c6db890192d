/*
Package domain contains the core models of the placeholder browser.

It defines the remote resources (Users, Posts, Comments), the navigation Levels, the
Session that caches what the user has drilled into, and the Screen view model the
engine hands to presentation adapters. This package is kept free of I/O so the
navigation engine can be tested without a network or a terminal.

# Key Entities

  - Level: where the user currently is (UserList, UserDetail, PostDetail).
  - Session: the selected user/post and the data fetched for them.
  - State: the runtime snapshot threaded through the engine (Level, Status, Session).
  - Screen: a structural description of what the host should draw before prompting.
*/
package domain
