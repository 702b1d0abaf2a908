package console

import "bytes"
import "strings"
import "testing"

import "github.com/pkg/errors"

func TestRun(t *testing.T) {
	var got [][]string
	var out bytes.Buffer
	c := Console{
		In:     strings.NewReader("GEN 1 2\n\n  bogus\nfail\nhelp\ngen\nexit\ngen 9\n"),
		Out:    &out,
		Prompt: "NEURAL>",
		Title:  "DIGIT RECOGNISER",
	}
	c.Add("gen", Command{Usage: "[iterations]", Help: "generate", Run: func(args []string) error {
		got = append(got, args)
		return nil
	}})
	c.Add("fail", Command{Run: func([]string) error { return errors.New("boom") }})

	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || len(got[0]) != 2 || got[0][1] != "2" || len(got[1]) != 0 {
		t.Errorf("dispatched %v", got)
	}
	s := out.String()
	for _, want := range []string{"\"bogus\" not recognised", "error: boom", "gen [iterations]", "DIGIT RECOGNISER", "NEURAL>"} {
		if !strings.Contains(s, want) {
			t.Errorf("output lacks %q:\n%s", want, s)
		}
	}
}

func TestExitFromCommand(t *testing.T) {
	calls := 0
	c := Console{In: strings.NewReader("quit\nquit\n"), Out: new(bytes.Buffer)}
	c.Add("quit", Command{Run: func([]string) error { calls++; return ErrExit }})
	if err := c.Run(); err != nil || calls != 1 {
		t.Errorf("err %v calls %d", err, calls)
	}
}

func TestArgs(t *testing.T) {
	args := []string{"10", "0.5", "1", "x"}
	if v, err := IntArg(args, 0, 3); v != 10 || err != nil {
		t.Errorf("int %d %v", v, err)
	}
	if v, err := IntArg(args, 9, 3); v != 3 || err != nil {
		t.Errorf("default int %d %v", v, err)
	}
	if _, err := IntArg(args, 3, 3); err == nil {
		t.Errorf("expected parse error")
	}
	if v, err := FloatArg(args, 1, 3); v != 0.5 || err != nil {
		t.Errorf("float %v %v", v, err)
	}
	if v, err := FloatArg(nil, 0, 3); v != 3 || err != nil {
		t.Errorf("default float %v %v", v, err)
	}
	if v, err := BoolArg(args, 2, false); !v || err != nil {
		t.Errorf("bool %v %v", v, err)
	}
	if v, err := BoolArg(args, 5, true); !v || err != nil {
		t.Errorf("default bool %v %v", v, err)
	}
}
