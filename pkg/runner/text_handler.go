package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/muesli/termenv"
)

// TextHandler implements the line-based console.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Tables   TableRenderer

	// ClearScreen erases the terminal before each screen.
	ClearScreen bool
	// MaxInputSize caps one answer in bytes; zero means DefaultMaxInputSize.
	MaxInputSize int

	term      *termenv.Output
	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the renderer applied to screen bodies.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerTables configures how tables are drawn.
func WithTextHandlerTables(tables TableRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Tables = tables
	}
}

// WithClearScreen toggles clearing the terminal before each screen.
func WithClearScreen(clear bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.ClearScreen = clear
	}
}

// WithMaxInputSize caps the size of one answer. Longer lines are rejected and re-prompted.
func WithMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = n
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Tables: PlainTable,
		term:   termenv.NewOutput(w),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour context cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// A final line without newline still counts.
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

// Output draws the screen: summary, body, table, then sentence lines.
func (h *TextHandler) Output(ctx context.Context, screen *domain.Screen) error {
	if screen == nil {
		return nil
	}
	if h.ClearScreen {
		h.term.ClearScreen()
	}

	fmt.Fprintln(h.Writer, screen.Summary)

	if screen.Body != "" {
		body := screen.Body
		if h.Renderer != nil {
			if rendered, err := h.Renderer(body); err == nil {
				body = rendered
			}
		}
		fmt.Fprintln(h.Writer)
		fmt.Fprintln(h.Writer, strings.TrimRight(body, "\n"))
	}

	if screen.Table != nil {
		fmt.Fprintln(h.Writer, h.Tables(screen.Table))
	}

	if len(screen.Lines) > 0 {
		fmt.Fprintln(h.Writer)
		for _, line := range screen.Lines {
			fmt.Fprintln(h.Writer, line)
		}
	}
	fmt.Fprintln(h.Writer)
	return nil
}

// Input prints prompt and waits for a line, re-prompting on unsafe input.
func (h *TextHandler) Input(ctx context.Context, prompt string) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := SanitizeInput(strings.TrimRight(res.text, "\r\n"), h.MaxInputSize)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// SystemOutput prints a message on its own line.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}
