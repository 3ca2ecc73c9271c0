// Package grpc exposes the storefront services over gRPC using the stubs
// generated from internal/proto/storefront.proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/storefront/internal/logging"
	pb "github.com/dmitrijs2005/storefront/internal/proto"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Signup(ctx context.Context, email, name, password string) (*services.Session, error)
	Signin(ctx context.Context, email, password string) (*services.Session, error)
	Signout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	UpdatePermissions(ctx context.Context, userID string, perms []models.Permission) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirm string) (*services.Session, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, item models.Item) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) (*models.Item, error)
}

type CartService interface {
	AddToCart(ctx context.Context, itemID string) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, cartItemID string) (*models.CartItem, error)
	GetCart(ctx context.Context) (*services.Cart, error)
}

type CheckoutService interface {
	CreateOrder(ctx context.Context, paymentToken string) (*models.Order, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
}

// IdentityResolver attaches caller identity for a raw credential.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (context.Context, error)
}

// Services groups the business services the server dispatches to.
type Services struct {
	Users    UserService
	Resets   ResetService
	Items    ItemService
	Carts    CartService
	Checkout CheckoutService
	Orders   OrderService
}

type GRPCServer struct {
	pb.UnimplementedStorefrontServer
	address  string
	svc      Services
	resolver IdentityResolver
	logger   logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, resolver IdentityResolver, svc Services) *GRPCServer {
	return &GRPCServer{
		address:  address,
		svc:      svc,
		resolver: resolver,
		logger:   l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.identityInterceptor))
	pb.RegisterStorefrontServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
