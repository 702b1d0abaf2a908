// Package console implements a line oriented command prompt
package console

import "bufio"
import "fmt"
import "io"
import "sort"
import "strconv"
import "strings"

import "github.com/pkg/errors"

// ErrExit stops Run without an error when returned by a command
var ErrExit = errors.New("console: exit")

// Command is one console command
type Command struct {
	Usage string
	Help  string
	Run   func(args []string) error
}

// Console reads commands from In and writes to Out
type Console struct {
	In       io.Reader
	Out      io.Writer
	Prompt   string
	Title    string
	Commands map[string]Command
}

// Add registers a command under a case insensitive name
func (c *Console) Add(name string, cmd Command) {
	if c.Commands == nil {
		c.Commands = make(map[string]Command)
	}
	c.Commands[strings.ToLower(name)] = cmd
}

func (c *Console) help() {
	if c.Title != "" {
		fmt.Fprintln(c.Out, c.Title)
		fmt.Fprintln(c.Out, strings.Repeat("-", len(c.Title)))
	}
	var names []string
	for name := range c.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := c.Commands[name]
		usage := name
		if cmd.Usage != "" {
			usage += " " + cmd.Usage
		}
		fmt.Fprintf(c.Out, "%s\t\t%s\n", usage, cmd.Help)
	}
	fmt.Fprintf(c.Out, "help\t\tprint this stuff\nexit\t\t...\n")
}

// Run reads lines until exit or end of input and dispatches them. Errors of
// commands are printed and the prompt continues.
func (c *Console) Run() error {
	sc := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, c.Prompt)
		if !sc.Scan() {
			return sc.Err()
		}
		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		first := strings.ToLower(tokens[0])
		switch first {
		case "help":
			c.help()
			continue
		case "exit":
			return nil
		}
		cmd, ok := c.Commands[first]
		if !ok {
			fmt.Fprintf(c.Out, "\"%s\" not recognised\n", tokens[0])
			continue
		}
		if err := cmd.Run(tokens[1:]); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			fmt.Fprintln(c.Out, "error:", err)
		}
	}
}

// IntArg returns args[i] as an int, or def when absent
func IntArg(args []string, i int, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[i])
	return v, errors.Wrapf(err, "argument %d", i+1)
}

// FloatArg returns args[i] as a float64, or def when absent
func FloatArg(args []string, i int, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	v, err := strconv.ParseFloat(args[i], 64)
	return v, errors.Wrapf(err, "argument %d", i+1)
}

// BoolArg returns whether args[i] is a non zero integer, or def when absent
func BoolArg(args []string, i int, def bool) (bool, error) {
	v, err := IntArg(args, i, 0)
	if i >= len(args) {
		return def, nil
	}
	return v != 0, err
}
