package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the shell dispatches to. Every command
// receives the words that followed it on the line.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context, args []string) error
	Signin(ctx context.Context, args []string) error
	Signout(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	RequestReset(ctx context.Context, args []string) error
	ResetPassword(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Grant(ctx context.Context, args []string) error
	CreateItem(ctx context.Context, args []string) error
	DeleteItem(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Cart(ctx context.Context, args []string) error
	Checkout(ctx context.Context, args []string) error
	Orders(ctx context.Context, args []string) error
	Order(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: signup, signin, forgot, reset, exit"
	helpSignedIn  = "Available commands: me, add <item>, remove <cart item>, cart, checkout <payment token>, " +
		"orders, order <id>, newitem, delitem <id>, users, grant <user> <PERM,...>, signout, exit"
)

// runREPL reads commands from reader until EOF or exit. Command errors are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var run func(context.Context, []string) error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		case "signup":
			run = a.Signup
		case "signin", "login":
			run = a.Signin
		case "signout", "logout":
			run = a.Signout
		case "me":
			run = a.Me
		case "forgot":
			run = a.RequestReset
		case "reset":
			run = a.ResetPassword
		case "users":
			run = a.Users
		case "grant":
			run = a.Grant
		case "newitem":
			run = a.CreateItem
		case "delitem":
			run = a.DeleteItem
		case "add":
			run = a.Add
		case "remove", "rm":
			run = a.Remove
		case "cart":
			run = a.Cart
		case "checkout":
			run = a.Checkout
		case "orders":
			run = a.Orders
		case "order":
			run = a.Order
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := run(ctx, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}
