package runtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/placeholder/pkg/domain"
)

// CommandKind is the meaning of a validated answer.
type CommandKind int

const (
	CommandSelect CommandKind = iota
	CommandBack
	CommandExit
	CommandComment
)

// Command is a validated answer. Index is 0-based and only set for CommandSelect.
type Command struct {
	Kind  CommandKind
	Index int
}

const (
	msgInvalidInput  = "Please enter a valid input."
	msgOutOfRange    = "Please enter a number between 1 and %d."
	msgNothingToPick = "There is nothing to select here."
)

var (
	menuAnswer = regexp.MustCompile(`^(?:[0-9]+|b|e)$`)
	postAnswer = regexp.MustCompile(`^[cbe]$`)
)

// Validate checks raw input against the rules of the state's level.
// It returns a *domain.ValidationError for anything that must be re-prompted.
func (e *Engine) Validate(state *domain.State, raw string) (Command, error) {
	input := strings.ToLower(strings.TrimSpace(raw))

	pattern := menuAnswer
	if state.Level == domain.LevelPostDetail {
		pattern = postAnswer
	}
	if !pattern.MatchString(input) {
		return Command{}, e.reject(state, raw, msgInvalidInput)
	}

	switch input {
	case "e":
		return Command{Kind: CommandExit}, nil
	case "b":
		return Command{Kind: CommandBack}, nil
	case "c":
		return Command{Kind: CommandComment}, nil
	}

	limit := e.MaxSelection(state.Level)
	if shown := e.selectable(state); shown < limit {
		limit = shown
	}
	if limit == 0 {
		return Command{}, e.reject(state, raw, msgNothingToPick)
	}

	// Overflowing digit strings fail Atoi and are reported as out of range.
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > limit {
		return Command{}, e.reject(state, raw, fmt.Sprintf(msgOutOfRange, limit))
	}
	return Command{Kind: CommandSelect, Index: n - 1}, nil
}

// selectable counts the entries actually listed at the state's level.
func (e *Engine) selectable(state *domain.State) int {
	switch state.Level {
	case domain.LevelUserList:
		return len(state.Session.Users)
	case domain.LevelUserDetail:
		return len(state.Session.VisiblePosts(e.maxPosts))
	}
	return 0
}

func (e *Engine) reject(state *domain.State, raw, msg string) error {
	return &domain.ValidationError{Level: state.Level, Input: raw, Message: msg}
}
