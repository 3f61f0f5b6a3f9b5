package console

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/kchristidis/listq/chain"
	"github.com/kchristidis/listq/element"
	"github.com/kchristidis/listq/queue"
	"github.com/kchristidis/listq/snapshot"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type command struct {
	usage            string
	doc              string
	minArgs, maxArgs int
	show             bool // Print the current queue afterwards.
	run              func(args []string) error
}

func (c *Console) table() map[string]command {
	return map[string]command{
		"new":      {"", "create a new queue and make it current", 0, 0, true, c.cmdNew},
		"free":     {"", "free the current queue", 0, 0, true, c.cmdFree},
		"ih":       {"str [n]", "insert str at the head n times", 1, 2, true, c.insert(true)},
		"it":       {"str [n]", "insert str at the tail n times", 1, 2, true, c.insert(false)},
		"rh":       {"[str]", "remove from the head, checking str if given", 0, 1, true, c.remove(true)},
		"rt":       {"[str]", "remove from the tail, checking str if given", 0, 1, true, c.remove(false)},
		"size":     {"", "print the number of elements", 0, 0, false, c.cmdSize},
		"dm":       {"", "delete the middle element", 0, 0, true, c.cmdDeleteMid},
		"dedup":    {"", "delete every duplicated value of a sorted queue", 0, 0, true, c.cmdDedup},
		"swap":     {"", "swap every two adjacent elements", 0, 0, true, c.cmdSwap},
		"reverse":  {"", "reverse the queue", 0, 0, true, c.cmdReverse},
		"reverseK": {"k", "reverse every group of k elements", 1, 1, true, c.cmdReverseK},
		"sort":     {"", "sort the queue", 0, 0, true, c.cmdSort},
		"ascend":   {"", "drop elements with a smaller value to their right", 0, 0, true, c.filter(true)},
		"descend":  {"", "drop elements with a greater value to their right", 0, 0, true, c.filter(false)},
		"merge":    {"", "merge every queue into the first one", 0, 0, true, c.cmdMerge},
		"show":     {"", "print every queue", 0, 0, false, c.cmdShow},
		"next":     {"", "make the next queue current", 0, 0, true, c.move(true)},
		"prev":     {"", "make the previous queue current", 0, 0, true, c.move(false)},
		"save":     {"file", "write the current queue to file", 1, 1, false, c.cmdSave},
		"load":     {"file", "append the values stored in file", 1, 1, true, c.cmdLoad},
		"option":   {"name value", "set descend, echo, bufsize or malloc", 2, 2, false, c.cmdOption},
		"help":     {"", "list the commands", 0, 0, false, c.cmdHelp},
		"quit":     {"", "stop reading commands", 0, 0, false, c.cmdQuit},
	}
}

func (c *Console) cmdNew(args []string) error {
	q := queue.New(queue.WithFactory(c.factory))
	c.current = c.chain.Add(q)
	c.Logger.Info("queue created", zap.Int("id", c.current.ID))
	return nil
}

func (c *Console) cmdFree(args []string) error {
	if c.current == nil {
		return ErrNoQueue
	}

	var next *chain.Context
	if c.chain.Len() > 1 {
		next = c.chain.Next(c.current)
	}

	c.current.Q.Free()
	c.chain.Remove(c.current)
	c.Logger.Info("queue freed", zap.Int("id", c.current.ID))
	c.current = next
	return nil
}

func (c *Console) insert(head bool) func(args []string) error {
	return func(args []string) error {
		q, err := c.queue()
		if err != nil {
			return err
		}

		n := 1
		if len(args) == 2 {
			if n, err = strconv.Atoi(args[1]); err != nil || n < 1 {
				return errors.Errorf("invalid repeat count '%s'", args[1])
			}
		}

		for i := 0; i < n; i++ {
			if head {
				err = q.InsertHead(args[0])
			} else {
				err = q.InsertTail(args[0])
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}

func (c *Console) remove(head bool) func(args []string) error {
	return func(args []string) error {
		q, err := c.queue()
		if err != nil {
			return err
		}

		buf := make([]byte, c.Config.BufSize)
		var e *element.Element
		if head {
			e, err = q.RemoveHead(buf)
		} else {
			e, err = q.RemoveTail(buf)
		}
		if err != nil {
			return err
		}
		q.Release(e)

		got := buf
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			got = buf[:i]
		}
		fmt.Fprintf(c.Out, "Removed %s from queue\n", got)

		if len(args) == 1 && string(got) != args[0] {
			return errors.Errorf("removed value %s, expected %s", got, args[0])
		}
		return nil
	}
}

func (c *Console) cmdSize(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Queue size = %d\n", q.Size())
	return nil
}

func (c *Console) cmdDeleteMid(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	return q.DeleteMid()
}

func (c *Console) cmdDedup(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	if !q.Sorted(c.Config.Descend) {
		c.Logger.Warn("dedup on an unsorted queue only drops adjacent duplicates")
	}
	return q.DeleteDup()
}

func (c *Console) cmdSwap(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	q.Swap()
	return nil
}

func (c *Console) cmdReverse(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	q.Reverse()
	return nil
}

func (c *Console) cmdReverseK(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	k, err := strconv.Atoi(args[0])
	if err != nil || k < 1 {
		return errors.Errorf("invalid group size '%s'", args[0])
	}
	q.ReverseK(k)
	return nil
}

func (c *Console) cmdSort(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	q.Sort(c.Config.Descend)
	if !q.Sorted(c.Config.Descend) {
		return errors.New("queue is not sorted")
	}
	return nil
}

func (c *Console) filter(ascend bool) func(args []string) error {
	return func(args []string) error {
		q, err := c.queue()
		if err != nil {
			return err
		}
		var removed int
		if ascend {
			removed = q.Ascend()
		} else {
			removed = q.Descend()
		}
		fmt.Fprintf(c.Out, "Removed %d elements\n", removed)
		return nil
	}
}

func (c *Console) cmdMerge(args []string) error {
	if c.current == nil {
		return ErrNoQueue
	}

	total := chain.MergeAll(c.chain, c.Config.Descend)

	first := c.chain.First()
	for _, ctx := range c.chain.Contexts() {
		if ctx == first {
			continue
		}
		ctx.Q.Free()
		c.chain.Remove(ctx)
	}
	c.current = first
	c.Logger.Info("queues merged", zap.Int("id", first.ID), zap.Int("size", total))

	if !first.Q.Sorted(c.Config.Descend) {
		return errors.New("merged queue is not sorted")
	}
	return nil
}

func (c *Console) cmdShow(args []string) error {
	if c.chain.Len() == 0 {
		fmt.Fprintln(c.Out, "q = NULL")
		return nil
	}
	for _, ctx := range c.chain.Contexts() {
		mark := " "
		if ctx == c.current {
			mark = "*"
		}
		fmt.Fprintf(c.Out, "%sq[%d] = %s\n", mark, ctx.ID, format(ctx.Q))
	}
	return nil
}

func (c *Console) move(forward bool) func(args []string) error {
	return func(args []string) error {
		if c.current == nil {
			return ErrNoQueue
		}
		if forward {
			c.current = c.chain.Next(c.current)
		} else {
			c.current = c.chain.Prev(c.current)
		}
		return nil
	}
}

func (c *Console) cmdSave(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	if err := snapshot.Save(c.Fs, args[0], q); err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Saved %d elements to %s\n", q.Size(), args[0])
	return nil
}

func (c *Console) cmdLoad(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	n, err := snapshot.Load(c.Fs, args[0], q)
	fmt.Fprintf(c.Out, "Loaded %d elements from %s\n", n, args[0])
	return err
}

func (c *Console) cmdOption(args []string) error {
	name, val := args[0], args[1]
	switch name {
	case "descend", "echo":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return errors.Errorf("invalid value '%s' for %s", val, name)
		}
		if name == "descend" {
			c.Config.Descend = b
		} else {
			c.Config.Echo = b
		}
	case "bufsize":
		n, err := strconv.Atoi(val)
		if err != nil || n < 1 {
			return errors.Errorf("invalid value '%s' for %s", val, name)
		}
		c.Config.BufSize = n
	case "malloc":
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Errorf("invalid value '%s' for %s", val, name)
		}
		// Counted from the elements alive right now; negative disables the limit.
		if n >= 0 {
			n += c.factory.InUse()
		}
		c.factory.Limit = n
	default:
		return errors.Errorf("unknown option '%s'", name)
	}
	c.Logger.Info("option set", zap.String("name", name), zap.String("value", val))
	return nil
}

func (c *Console) cmdHelp(args []string) error {
	c.help()
	return nil
}

func (c *Console) cmdQuit(args []string) error {
	c.done = true
	return nil
}
