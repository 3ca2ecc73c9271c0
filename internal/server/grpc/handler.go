package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/storefront/internal/proto"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// ResetAcknowledgement is returned for every reset request so that the
// response does not reveal whether the account exists.
const ResetAcknowledgement = "If an account exists for that email, a reset link has been sent."

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.SessionResponse, error) {
	sess, err := s.svc.Users.Signup(ctx, req.GetEmail(), req.GetName(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Registered", "user_id", sess.User.ID)
	return toSessionResponse(sess), nil
}

func (s *GRPCServer) Signin(ctx context.Context, req *pb.SigninRequest) (*pb.SessionResponse, error) {
	sess, err := s.svc.Users.Signin(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toSessionResponse(sess), nil
}

func (s *GRPCServer) Signout(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := s.svc.Users.Signout(ctx); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.Empty) (*pb.MeResponse, error) {
	u, err := s.svc.Users.Me(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if u == nil {
		return &pb.MeResponse{}, nil
	}
	return &pb.MeResponse{User: toPBUser(u)}, nil
}

func (s *GRPCServer) RequestReset(ctx context.Context, req *pb.RequestResetRequest) (*pb.RequestResetResponse, error) {
	if err := s.svc.Resets.RequestReset(ctx, req.GetEmail()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RequestResetResponse{Message: ResetAcknowledgement}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.SessionResponse, error) {
	sess, err := s.svc.Resets.ResetPassword(ctx, req.GetResetToken(), req.GetPassword(), req.GetConfirmPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toSessionResponse(sess), nil
}

func (s *GRPCServer) UpdatePermissions(ctx context.Context, req *pb.UpdatePermissionsRequest) (*pb.UserResponse, error) {
	perms := make([]models.Permission, len(req.GetPermissions()))
	for i, p := range req.GetPermissions() {
		perms[i] = models.Permission(p)
	}
	u, err := s.svc.Users.UpdatePermissions(ctx, req.GetUserId(), perms)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: toPBUser(u)}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *pb.Empty) (*pb.ListUsersResponse, error) {
	list, err := s.svc.Users.ListUsers(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.ListUsersResponse{Users: make([]*pb.User, 0, len(list))}
	for _, u := range list {
		resp.Users = append(resp.Users, toPBUser(u))
	}
	return resp, nil
}

func (s *GRPCServer) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.ItemResponse, error) {
	it, err := s.svc.Items.CreateItem(ctx, models.Item{
		Title:       req.GetTitle(),
		Description: req.GetDescription(),
		Image:       req.GetImage(),
		LargeImage:  req.GetLargeImage(),
		Price:       req.GetPrice(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ItemResponse{Item: toPBItem(it)}, nil
}

func (s *GRPCServer) DeleteItem(ctx context.Context, req *pb.IDRequest) (*pb.ItemResponse, error) {
	it, err := s.svc.Items.DeleteItem(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ItemResponse{Item: toPBItem(it)}, nil
}

func (s *GRPCServer) AddToCart(ctx context.Context, req *pb.AddToCartRequest) (*pb.CartItemResponse, error) {
	ci, err := s.svc.Carts.AddToCart(ctx, req.GetItemId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CartItemResponse{CartItem: toPBCartItem(ci)}, nil
}

func (s *GRPCServer) RemoveFromCart(ctx context.Context, req *pb.IDRequest) (*pb.CartItemResponse, error) {
	ci, err := s.svc.Carts.RemoveFromCart(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CartItemResponse{CartItem: toPBCartItem(ci)}, nil
}

func (s *GRPCServer) GetCart(ctx context.Context, _ *pb.Empty) (*pb.CartResponse, error) {
	c, err := s.svc.Carts.GetCart(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toPBCart(c), nil
}

func (s *GRPCServer) CreateOrder(ctx context.Context, req *pb.CreateOrderRequest) (*pb.OrderResponse, error) {
	o, err := s.svc.Checkout.CreateOrder(ctx, req.GetPaymentToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.OrderResponse{Order: toPBOrder(o)}, nil
}

func (s *GRPCServer) GetOrder(ctx context.Context, req *pb.IDRequest) (*pb.OrderResponse, error) {
	o, err := s.svc.Orders.GetOrder(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.OrderResponse{Order: toPBOrder(o)}, nil
}

func (s *GRPCServer) ListOrders(ctx context.Context, _ *pb.Empty) (*pb.ListOrdersResponse, error) {
	list, err := s.svc.Orders.ListOrders(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.ListOrdersResponse{Orders: make([]*pb.Order, 0, len(list))}
	for _, o := range list {
		resp.Orders = append(resp.Orders, toPBOrder(o))
	}
	return resp, nil
}
