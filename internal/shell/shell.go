package shell

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"abook/internal/domain"
	"abook/internal/logic"
)

const (
	welcome = "Welcome to abook. Type 'help' to see available commands."
	prompt  = "> "
)

// Shell runs the interactive line loop against the executor: one command
// per line, feedback printed after each, until exit or end of input.
type Shell struct {
	logic *logic.Logic
	in    io.Reader
	out   io.Writer
	log   *zap.Logger
}

// New returns a shell reading commands from in and printing results to out.
// A nil logger disables logging.
func New(l *logic.Logic, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{logic: l, in: in, out: out, log: log}
}

// Run processes lines until the exit command, end of input, or a storage
// failure. A storage failure aborts the loop: the session can no longer
// guarantee that what the user sees is what is on disk.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, welcome)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		s.log.Debug("executing command", zap.String("line", line))

		res := s.logic.Execute(line)
		s.print(res)

		if res.Err != nil {
			return res.Err
		}
		if res.Exit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *Shell) print(res logic.Result) {
	if shown, ok := res.Shown(); ok {
		fmt.Fprint(s.out, renderShown(shown))
	}
	fmt.Fprintln(s.out, res.Feedback)
}

// renderShown renders a listing with the 1-based indices that subsequent
// view/viewall/delete commands refer to.
func renderShown(persons []domain.Person) string {
	var b []byte
	for i, p := range persons {
		b = fmt.Appendf(b, "\t%d. %s\n", i+1, p)
	}
	return string(b)
}
