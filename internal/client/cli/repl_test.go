package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Me(ctx context.Context) error           { return f.record("me") }
func (f *fakeExec) Feed(ctx context.Context) error         { return f.record("feed") }
func (f *fakeExec) ShowPost(ctx context.Context) error     { return f.record("post") }
func (f *fakeExec) NewPost(ctx context.Context) error      { return f.record("newpost") }
func (f *fakeExec) Market(ctx context.Context) error       { return f.record("market") }
func (f *fakeExec) ShowProduct(ctx context.Context) error  { return f.record("product") }
func (f *fakeExec) Sell(ctx context.Context) error         { return f.record("sell") }
func (f *fakeExec) Farmers(ctx context.Context) error      { return f.record("farmers") }
func (f *fakeExec) ShowFarmer(ctx context.Context) error   { return f.record("farmer") }
func (f *fakeExec) BecomeFarmer(ctx context.Context) error { return f.record("becomefarmer") }
func (f *fakeExec) Chats(ctx context.Context) error        { return f.record("chats") }
func (f *fakeExec) OpenChat(ctx context.Context) error     { return f.record("open") }
func (f *fakeExec) Stats(ctx context.Context) error        { return f.record("stats") }
func (f *fakeExec) Upload(ctx context.Context) error       { return f.record("upload") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"feed",
		"market",
		"post",
		"chats",
		"stats",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "feed", "market", "post", "chats", "stats"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_Shortcuts(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("f\nm\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 2 || exec.calls[0] != "feed" || exec.calls[1] != "market" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("bogus\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
