// Package console implements the interactive menu front end. It reads one
// line per prompt from an io.Reader, drives a ports.TaskService, and writes
// prompts and results to an io.Writer.
//
// The loop ends when the user picks Exit, when input is exhausted, or when the
// context passed to Run is cancelled. Validation failures, malformed numbers
// and panics inside an action are reported and the loop continues.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/taskconsole/internal/output"
	"github.com/jsamuelsen11/taskconsole/internal/platform/logging"
	"github.com/jsamuelsen11/taskconsole/internal/ports"
)

// maxLineSize caps a single input line.
const maxLineSize = 1 << 20

const (
	welcome = "Welcome to Console Todo Application!"
	menu    = `
Console Todo Application
========================
1. Add Task
2. View All Tasks
3. Update Task
4. Delete Task
5. Mark Task Complete/Incomplete
6. Exit

`
	goodbye = "Goodbye!"

	promptChoice      = "Select an option: "
	promptTitle       = "Enter task title: "
	promptDescription = "Enter task description (optional, press Enter to skip): "
	promptUpdateID    = "Enter task ID to update: "
	promptNewTitle    = "Enter new title (or press Enter to keep current): "
	promptNewDesc     = "Enter new description (or press Enter to keep current): "
	promptDeleteID    = "Enter task ID to delete: "
	promptToggleID    = "Enter task ID to mark complete/incomplete: "
)

const (
	choiceAdd = iota + 1
	choiceView
	choiceUpdate
	choiceDelete
	choiceToggle
	choiceExit
)

// actionNames label each action in logs.
var actionNames = map[int]string{
	choiceAdd:    "add",
	choiceView:   "view",
	choiceUpdate: "update",
	choiceDelete: "delete",
	choiceToggle: "toggle",
}

// Console is the menu-driven front end. It is not safe for concurrent use;
// Run must be called at most once at a time.
type Console struct {
	svc    ports.TaskService
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	table  output.Table

	lines   <-chan string
	readErr error
	actions int
}

// Option configures a Console.
type Option func(*Console)

// WithTable sets the formatter used by View All Tasks.
func WithTable(t output.Table) Option {
	return func(c *Console) {
		c.table = t
	}
}

// New creates a Console reading from in and writing to out. With a nil
// logger, Run logs to the logger carried by its context, or nowhere.
func New(svc ports.TaskService, in io.Reader, out io.Writer, logger *slog.Logger, opts ...Option) *Console {
	c := &Console{
		svc:    svc,
		in:     in,
		out:    out,
		logger: logger,
		table:  output.NewTable(output.DefaultTitleWidth, output.DefaultDescriptionWidth),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run prints the welcome banner and serves the menu until the user exits,
// input ends, or ctx is cancelled. Those three cases return nil; only a
// failure reading input is returned as an error.
func (c *Console) Run(ctx context.Context) error {
	if c.logger == nil {
		c.logger = logging.FromContextOr(ctx, slog.New(slog.DiscardHandler))
	}

	done := make(chan struct{})
	defer close(done)
	c.lines = c.readLines(done)

	c.println(welcome)

	for {
		fmt.Fprint(c.out, menu)

		raw, err := c.readLine(ctx, promptChoice)
		if err != nil {
			return c.stop(ctx, err)
		}

		choice, ok := parseChoice(raw)
		if !ok {
			c.printf("Error: '%s' is not a valid menu option. Please enter a number between %d and %d.\n",
				raw, choiceAdd, choiceExit)
			continue
		}
		if choice == choiceExit {
			c.println(goodbye)
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return c.stop(ctx, err)
		}
	}
}

// dispatch runs the action for choice under its own numbered logger,
// recovering from any panic so the menu keeps running. Only input errors are
// returned.
func (c *Console) dispatch(ctx context.Context, choice int) (err error) {
	c.actions++
	ctx, logger := logging.ForAction(ctx, c.logger, c.actions, actionNames[choice])

	defer func() {
		if v := recover(); v != nil {
			logger.ErrorContext(ctx, "panic recovered",
				slog.String("panic", fmt.Sprint(v)),
				slog.String("stack", string(debug.Stack())),
			)
			c.printf("An unexpected error occurred: %v\n", v)
			err = nil
		}
	}()

	logger.DebugContext(ctx, "menu selection", slog.Int("choice", choice))

	switch choice {
	case choiceAdd:
		return c.addTask(ctx)
	case choiceView:
		c.viewTasks(ctx)
		return nil
	case choiceUpdate:
		return c.updateTask(ctx)
	case choiceDelete:
		return c.deleteTask(ctx)
	case choiceToggle:
		return c.toggleTask(ctx)
	}
	return nil
}

// stop ends the loop for a read error. End of input and cancellation are a
// clean exit.
func (c *Console) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) || ctx.Err() != nil {
		c.println()
		c.println(goodbye)
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

// readLines starts the goroutine feeding input lines to Run. It exits at end
// of input or when done is closed.
func (c *Console) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		c.readErr = scanner.Err()
	}()

	return lines
}

// readLine writes prompt and waits for the next trimmed input line.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", c.readErr
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// readID prompts for a task ID. ok is false when the input was not an
// integer; the error has then already been reported.
func (c *Console) readID(ctx context.Context, prompt string) (id int64, ok bool, err error) {
	raw, err := c.readLine(ctx, prompt)
	if err != nil {
		return 0, false, err
	}

	id, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		c.printf("Error: '%s' is not a valid integer\n", raw)
		return 0, false, nil
	}
	return id, true, nil
}

func parseChoice(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < choiceAdd || n > choiceExit {
		return 0, false
	}
	return n, true
}

// optional returns nil for empty input.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (c *Console) notFound(id int64) {
	c.printf("Error: Task with ID %d not found\n", id)
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
