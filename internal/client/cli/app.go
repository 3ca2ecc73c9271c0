// Package cli implements shopctl, an interactive shell over the storefront
// gRPC API.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	pb "github.com/dmitrijs2005/storefront/internal/proto"
	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
)

// shopAPI is the client surface the shell uses. *client.Client satisfies it.
type shopAPI interface {
	Signup(ctx context.Context, email, name, password string) (*pb.User, error)
	Signin(ctx context.Context, email, password string) (*pb.User, error)
	Signout(ctx context.Context) error
	Me(ctx context.Context) (*pb.User, error)
	RequestReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password, confirm string) (*pb.User, error)
	UpdatePermissions(ctx context.Context, userID string, perms []string) (*pb.User, error)
	ListUsers(ctx context.Context) ([]*pb.User, error)
	CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.Item, error)
	DeleteItem(ctx context.Context, id string) (*pb.Item, error)
	AddToCart(ctx context.Context, itemID string) (*pb.CartItem, error)
	RemoveFromCart(ctx context.Context, cartItemID string) (*pb.CartItem, error)
	GetCart(ctx context.Context) (*pb.CartResponse, error)
	CreateOrder(ctx context.Context, paymentToken string) (*pb.Order, error)
	GetOrder(ctx context.Context, id string) (*pb.Order, error)
	ListOrders(ctx context.Context) ([]*pb.Order, error)
	Close() error
}

type App struct {
	config *config.Config
	api    shopAPI
	reader *bufio.Reader
	out    io.Writer
	user   *pb.User
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.New(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return "anonymous"
	}
	return a.user.Email
}

// Run starts the shell and returns when the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	printlnFn("Welcome to shopctl (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}
