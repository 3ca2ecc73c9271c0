// Package client is a thin gRPC client for the storefront service. It keeps
// the session credential returned by Signup, Signin and ResetPassword and
// attaches it to every later call.
package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/common"
	pb "github.com/dmitrijs2005/storefront/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type Client struct {
	conn   *grpc.ClientConn
	client pb.StorefrontClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := c.Token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
		return mapError(err)
	}
	return nil
}

// New connects to target. Extra dial options are appended after the
// defaults, so tests can replace the dialer.
func New(target string, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{}
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewStorefrontClient(conn)
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Token returns the current session credential, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Client) session(resp *pb.SessionResponse, err error) (*pb.User, error) {
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.GetToken())
	return resp.GetUser(), nil
}

func (c *Client) Signup(ctx context.Context, email, name, password string) (*pb.User, error) {
	return c.session(c.client.Signup(ctx, &pb.SignupRequest{Email: email, Name: name, Password: password}))
}

func (c *Client) Signin(ctx context.Context, email, password string) (*pb.User, error) {
	return c.session(c.client.Signin(ctx, &pb.SigninRequest{Email: email, Password: password}))
}

// Signout tells the server and forgets the local credential even if the
// call fails.
func (c *Client) Signout(ctx context.Context) error {
	_, err := c.client.Signout(ctx, &pb.Empty{})
	c.SetToken("")
	return err
}

// Me returns nil when the client is not signed in.
func (c *Client) Me(ctx context.Context) (*pb.User, error) {
	resp, err := c.client.Me(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.GetUser(), nil
}

func (c *Client) RequestReset(ctx context.Context, email string) (string, error) {
	resp, err := c.client.RequestReset(ctx, &pb.RequestResetRequest{Email: email})
	if err != nil {
		return "", err
	}
	return resp.GetMessage(), nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password, confirm string) (*pb.User, error) {
	return c.session(c.client.ResetPassword(ctx, &pb.ResetPasswordRequest{
		ResetToken: token, Password: password, ConfirmPassword: confirm,
	}))
}

func (c *Client) UpdatePermissions(ctx context.Context, userID string, perms []string) (*pb.User, error) {
	resp, err := c.client.UpdatePermissions(ctx, &pb.UpdatePermissionsRequest{UserId: userID, Permissions: perms})
	if err != nil {
		return nil, err
	}
	return resp.GetUser(), nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*pb.User, error) {
	resp, err := c.client.ListUsers(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.GetUsers(), nil
}

func (c *Client) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.Item, error) {
	resp, err := c.client.CreateItem(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.GetItem(), nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) (*pb.Item, error) {
	resp, err := c.client.DeleteItem(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return resp.GetItem(), nil
}

func (c *Client) AddToCart(ctx context.Context, itemID string) (*pb.CartItem, error) {
	resp, err := c.client.AddToCart(ctx, &pb.AddToCartRequest{ItemId: itemID})
	if err != nil {
		return nil, err
	}
	return resp.GetCartItem(), nil
}

func (c *Client) RemoveFromCart(ctx context.Context, cartItemID string) (*pb.CartItem, error) {
	resp, err := c.client.RemoveFromCart(ctx, &pb.IDRequest{Id: cartItemID})
	if err != nil {
		return nil, err
	}
	return resp.GetCartItem(), nil
}

func (c *Client) GetCart(ctx context.Context) (*pb.CartResponse, error) {
	return c.client.GetCart(ctx, &pb.Empty{})
}

func (c *Client) CreateOrder(ctx context.Context, paymentToken string) (*pb.Order, error) {
	resp, err := c.client.CreateOrder(ctx, &pb.CreateOrderRequest{PaymentToken: paymentToken})
	if err != nil {
		return nil, err
	}
	return resp.GetOrder(), nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*pb.Order, error) {
	resp, err := c.client.GetOrder(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return resp.GetOrder(), nil
}

func (c *Client) ListOrders(ctx context.Context) ([]*pb.Order, error) {
	resp, err := c.client.ListOrders(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.GetOrders(), nil
}
