package domain

// Table is a header row plus data rows, already formatted as text.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Screen is everything the host draws for a level before prompting.
type Screen struct {
	Level Level

	// Summary is the one-line context header.
	Summary string

	// Body is free text shown under the summary (e.g. the post body).
	Body string

	// Table is set for list screens.
	Table *Table

	// Lines is set for screens that list entries as sentences (comments).
	Lines []string

	// Prompt is the question asked once the screen is drawn.
	Prompt string
}

// Prompts asked by the comment-authoring sub-flow, in order.
const (
	PromptCommentEmail = "Enter your email: "
	PromptCommentTitle = "Enter the title of your comment: "
	PromptCommentBody  = "Enter your comment: "
)
