package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	navs    []string
	logouts int
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Navigate(ctx context.Context, path string) {
	f.navs = append(f.navs, path)
}
func (f *fakeExec) Logout(ctx context.Context) {
	f.logouts++
	f.loggedIn = false
}

func TestRunREPL_CommandsMapToRoutes(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"home",
		"browse",
		"view p1",
		"update p2",
		"products",
		"insert",
		"profile",
		"about",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"/", "/browse", "/view/p1", "/update-product/p2", "/products", "/insert", "/profile", "/about"}
	if len(exec.navs) != len(want) {
		t.Fatalf("navigations mismatch: got %v, want %v", exec.navs, want)
	}
	for i, p := range want {
		if exec.navs[i] != p {
			t.Fatalf("navigation %d: got %q, want %q", i, exec.navs[i], p)
		}
	}
}

func TestRunREPL_ProtectedRoutesStillDispatchWhenLoggedOut(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	// The guard, not the REPL, decides whether a route renders.
	input := strings.NewReader("products\nquit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "guest" }, sc)

	if len(exec.navs) != 1 || exec.navs[0] != "/products" {
		t.Fatalf("unexpected navigations: %v", exec.navs)
	}
}

func TestRunREPL_UsageAndLogout(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("update\nview\nlogout\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.navs) != 0 {
		t.Fatalf("update/view without id must not navigate: %v", exec.navs)
	}
	if exec.logouts != 1 {
		t.Fatalf("logout calls: got %d, want 1", exec.logouts)
	}
}
