// Package console interprets line-oriented commands against a chain of
// queues. Every command acts on the current queue; "new" adds a queue and
// makes it current, "next" and "prev" move between queues.
package console

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kchristidis/listq/chain"
	"github.com/kchristidis/listq/config"
	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/queue"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNoQueue is returned by commands that need a current queue when there is none.
var ErrNoQueue = errors.New("no queue, run 'new' first")

// ErrLeak is returned by Close when elements were never released.
var ErrLeak = errors.New("elements still allocated")

// Console ...
type Console struct {
	Config config.Console
	Fs     afero.Fs     // Where save and load read and write.
	Out    io.Writer    // Command output.
	Logger *zap.Logger

	factory  *element.Budget
	chain    *chain.Chain
	current  *chain.Context
	commands map[string]command
	failed   int
	done     bool
}

// New returns a console with no queues.
func New(cfg config.Console, fs afero.Fs, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Console{
		Config:  cfg,
		Fs:      fs,
		Out:     out,
		Logger:  logger,
		factory: &element.Budget{Limit: -1},
		chain:   chain.New(),
	}
	c.commands = c.table()
	return c
}

// Run executes the commands read from r until it is exhausted or "quit" is
// read, and returns the number of commands that failed.
func (c *Console) Run(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	for !c.done && sc.Scan() {
		c.Exec(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return c.failed, errors.Wrap(err, "cannot read commands")
	}
	return c.failed, nil
}

// Exec runs a single command line. Blank lines and lines starting with '#'
// are ignored.
func (c *Console) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if c.Config.Echo {
		fmt.Fprintf(c.Out, "cmd> %s\n", line)
	}

	args := strings.Fields(line)
	cmd, ok := c.commands[args[0]]
	if !ok {
		return c.fail(args[0], errors.Errorf("unknown command '%s'", args[0]))
	}
	if len(args)-1 < cmd.minArgs || len(args)-1 > cmd.maxArgs {
		return c.fail(args[0], errors.Errorf("usage: %s %s", args[0], cmd.usage))
	}

	c.Logger.Debug("running command", zap.String("cmd", args[0]), zap.Strings("args", args[1:]))
	if err := cmd.run(args[1:]); err != nil {
		return c.fail(args[0], err)
	}
	if cmd.show {
		c.show()
	}
	return nil
}

// Failed returns the number of commands that failed so far.
func (c *Console) Failed() int {
	return c.failed
}

// Queues returns the queues in chain order.
func (c *Console) Queues() []*queue.Queue {
	var res []*queue.Queue
	for _, ctx := range c.chain.Contexts() {
		res = append(res, ctx.Q)
	}
	return res
}

// Close frees every queue and reports elements that were never released.
func (c *Console) Close() error {
	for _, ctx := range c.chain.Contexts() {
		ctx.Q.Free()
		c.chain.Remove(ctx)
	}
	c.current = nil

	if n := c.factory.InUse(); n > 0 {
		c.Logger.Error("leaked elements", zap.Int("count", n))
		return errors.Wrapf(ErrLeak, "%d", n)
	}
	return nil
}

func (c *Console) fail(name string, err error) error {
	c.failed++
	fmt.Fprintf(c.Out, "ERROR: %s\n", err)
	c.Logger.Warn("command failed", zap.String("cmd", name), zap.Error(err))
	return err
}

func (c *Console) queue() (*queue.Queue, error) {
	if c.current == nil {
		return nil, ErrNoQueue
	}
	return c.current.Q, nil
}

func (c *Console) show() {
	if c.current == nil {
		fmt.Fprintln(c.Out, "q = NULL")
		return
	}
	fmt.Fprintf(c.Out, "q = %s\n", format(c.current.Q))
}

func format(q *queue.Queue) string {
	return "[" + strings.Join(q.Values(), " ") + "]"
}

func (c *Console) help() {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := c.commands[name]
		fmt.Fprintf(c.Out, "  %-10s %-12s| %s\n", name, cmd.usage, cmd.doc)
	}
}
