package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	pb "github.com/dmitrijs2005/storefront/internal/proto"
)

// getSimpleText and getPassword are test seams over the prompt helpers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errUsage = errors.New("wrong arguments, see help")

func (a *App) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// arg returns args[i], or prompts for it when missing.
func (a *App) arg(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", errUsage
	}
	return v, nil
}

func (a *App) Signup(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}
	name, err := a.arg(args, 1, "Enter name")
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	u, err := a.api.Signup(ctx, email, name, password)
	if err != nil {
		return err
	}
	a.user = u
	printlnFn("Welcome,", u.Name)
	return nil
}

func (a *App) Signin(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	u, err := a.api.Signin(ctx, email, password)
	if err != nil {
		return err
	}
	a.user = u
	printlnFn("Signed in as", u.Email)
	return nil
}

func (a *App) Signout(ctx context.Context, _ []string) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	a.user = nil
	return a.api.Signout(ctx)
}

func (a *App) Me(ctx context.Context, _ []string) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	u, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> id=%s permissions=%s", u.Name, u.Email, u.GetId(), strings.Join(u.Permissions, ",")))
	return nil
}

func (a *App) RequestReset(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	msg, err := a.api.RequestReset(ctx, email)
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	token, err := a.arg(args, 0, "Enter reset token")
	if err != nil {
		return err
	}
	password, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	u, err := a.api.ResetPassword(ctx, token, password, confirm)
	if err != nil {
		return err
	}
	a.user = u
	printlnFn("Password changed, signed in as", u.Email)
	return nil
}

func (a *App) Users(ctx context.Context, _ []string) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%s  %-30s %s", u.GetId(), u.Email, strings.Join(u.Permissions, ",")))
	}
	return nil
}

// Grant replaces a user's permissions: grant <user id> ADMIN,USER
func (a *App) Grant(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	u, err := a.api.UpdatePermissions(ctx, args[0], strings.Split(args[1], ","))
	if err != nil {
		return err
	}
	printlnFn(u.GetId(), "now has", strings.Join(u.Permissions, ","))
	return nil
}

func (a *App) CreateItem(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	rawPrice, err := getSimpleText(a.reader, "Price in minor units (cents)", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseInt(rawPrice, 10, 64)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	it, err := a.api.CreateItem(ctx, &pb.CreateItemRequest{Title: title, Description: description, Price: price})
	if err != nil {
		return err
	}
	printlnFn("Created item", it.GetId())
	return nil
}

func (a *App) DeleteItem(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Item id")
	if err != nil {
		return err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	it, err := a.api.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	printlnFn("Deleted", it.Title)
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Item id")
	if err != nil {
		return err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	ci, err := a.api.AddToCart(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s x%d (line %s)", ci.GetItemId(), ci.Quantity, ci.GetId()))
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Cart item id")
	if err != nil {
		return err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	if _, err := a.api.RemoveFromCart(ctx, id); err != nil {
		return err
	}
	printlnFn("Removed", id)
	return nil
}

func (a *App) Cart(ctx context.Context, _ []string) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	cart, err := a.api.GetCart(ctx)
	if err != nil {
		return err
	}
	if len(cart.Lines) == 0 {
		printlnFn("Cart is empty")
		return nil
	}
	for _, l := range cart.Lines {
		printlnFn(fmt.Sprintf("%s  %-24s x%d  %s", l.GetCartItemId(), l.GetItem().GetTitle(), l.Quantity, formatMoney(l.LineTotal, "")))
	}
	printlnFn("Subtotal:", formatMoney(cart.Subtotal, ""))
	return nil
}

func (a *App) Checkout(ctx context.Context, args []string) error {
	token, err := a.arg(args, 0, "Payment token")
	if err != nil {
		return err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	o, err := a.api.CreateOrder(ctx, token)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Order %s placed: %s (charge %s)", o.GetId(), formatMoney(o.Total, o.Currency), o.GetChargeId()))
	return nil
}

func (a *App) Orders(ctx context.Context, _ []string) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	orders, err := a.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("%s  %s  %s  %d items", o.GetId(), o.GetCreatedAt().AsTime().Format("2006-01-02 15:04"),
			formatMoney(o.Total, o.Currency), len(o.Items)))
	}
	return nil
}

func (a *App) Order(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Order id")
	if err != nil {
		return err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	o, err := a.api.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Order %s  %s  charge %s", o.GetId(), formatMoney(o.Total, o.Currency), o.GetChargeId()))
	for _, it := range o.Items {
		printlnFn(fmt.Sprintf("  %-24s x%d  %s", it.Title, it.Quantity, formatMoney(it.Price*it.Quantity, "")))
	}
	return nil
}
