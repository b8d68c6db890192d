/*
Package runner drives the placeholder engine against a console.

The Runner owns the single Session State of a run and loops Render -> Input -> Navigate:
it draws the screen for the current level, keeps prompting until the engine accepts an
answer, runs the comment-authoring sub-flow when asked to, and stops when the user exits.
IOHandler abstracts the console so the loop can be driven by tests.
*/
package runner
