package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register", nil)
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", nil)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error { f.record("whoami", nil); return nil }
func (f *fakeExec) New(ctx context.Context) error    { f.record("new", nil); return nil }
func (f *fakeExec) Voice(ctx context.Context, args []string) error {
	f.record("voice", args)
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.record("list", nil); return nil }
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	f.record("show", args)
	return nil
}
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	f.record("edit", args)
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	f.record("delete", args)
	return nil
}
func (f *fakeExec) Tag(ctx context.Context, args []string) error {
	f.record("tag", args)
	return nil
}
func (f *fakeExec) Tags(ctx context.Context) error { f.record("tags", nil); return nil }
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	f.record("search", args)
	return nil
}
func (f *fakeExec) Insights(ctx context.Context) error { f.record("insights", nil); return nil }
func (f *fakeExec) Export(ctx context.Context, args []string) error {
	f.record("export", args)
	return nil
}
func (f *fakeExec) Clear(ctx context.Context) error { f.record("clear", nil); return nil }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"new",
		"list",
		"show 42",
		"tag 42 work stress",
		"search good day",
		"insights",
		"export out.json",
		"unknowncmd",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"login", "new", "list", "show", "tag", "search", "insights", "export", "logout"}, exec.calls)
	assert.Equal(t, []string{"out.json"}, exec.args[7])
	assert.Equal(t, []string{"42"}, exec.args[3])
	assert.Equal(t, []string{"42", "work", "stress"}, exec.args[4])
	assert.Equal(t, []string{"good", "day"}, exec.args[5])
}

func TestRunREPL_Aliases(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("l\nrm 7\nstats\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"list", "delete", "insights"}, exec.calls)
	assert.Equal(t, []string{"7"}, exec.args[1])
}

func TestRunREPL_BlankLinesAreIgnored(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n   \nlist\nexit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("list\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"list"}, exec.calls)
}
