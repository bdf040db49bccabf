package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Feed(ctx context.Context) error
	ShowPost(ctx context.Context) error
	NewPost(ctx context.Context) error
	Market(ctx context.Context) error
	ShowProduct(ctx context.Context) error
	Sell(ctx context.Context) error
	Farmers(ctx context.Context) error
	ShowFarmer(ctx context.Context) error
	BecomeFarmer(ctx context.Context) error
	Chats(ctx context.Context) error
	OpenChat(ctx context.Context) error
	Stats(ctx context.Context) error
	Upload(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the MycoMarket CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - feed | market | farmers | stats — browse public content
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - me             — show the current profile
//	  - newpost        — publish a forum post
//	  - post           — open a post (likes, bookmarks, comments)
//	  - product        — open a product (reviews)
//	  - sell           — publish a listing (farmer accounts)
//	  - becomefarmer   — apply for a farmer account
//	  - chats          — list conversations
//	  - open           — open a conversation
//	  - upload         — upload a local file
//	  - logout         — log out
//
// Any errors returned by command handlers are reported here and the loop
// continues. This keeps the REPL resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("myco %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, (f)eed, post, newpost, (m)arket, product, sell, farmers, farmer, becomefarmer, chats, open, stats, upload, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (f)eed, (m)arket, farmers, stats, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "me":
			err = a.Me(ctx)

		case "f", "feed":
			err = a.Feed(ctx)

		case "post":
			err = a.ShowPost(ctx)

		case "newpost":
			err = a.NewPost(ctx)

		case "m", "market":
			err = a.Market(ctx)

		case "product":
			err = a.ShowProduct(ctx)

		case "sell":
			err = a.Sell(ctx)

		case "farmers":
			err = a.Farmers(ctx)

		case "farmer":
			err = a.ShowFarmer(ctx)

		case "becomefarmer":
			err = a.BecomeFarmer(ctx)

		case "chat", "chats":
			err = a.Chats(ctx)

		case "open":
			err = a.OpenChat(ctx)

		case "stats":
			err = a.Stats(ctx)

		case "upload":
			err = a.Upload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

// Run restores any persisted session and drives the REPL until exit.
func (a *App) Run(ctx context.Context) {
	if p := a.auth.CurrentUser(); p != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", p.FullName))
	}
	printlnFn("MycoMarket CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.getStatus, scanner)
}
