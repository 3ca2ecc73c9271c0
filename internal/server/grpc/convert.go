package grpc

import (
	pb "github.com/dmitrijs2005/storefront/internal/proto"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toPBUser(u *models.User) *pb.User {
	perms := make([]string, len(u.Permissions))
	for i, p := range u.Permissions {
		perms[i] = string(p)
	}
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Permissions: perms,
		CreatedAt:   timestamppb.New(u.CreatedAt),
	}
}

func toSessionResponse(s *services.Session) *pb.SessionResponse {
	return &pb.SessionResponse{Token: s.Token, User: toPBUser(s.User)}
}

func toPBItem(it *models.Item) *pb.Item {
	return &pb.Item{
		Id:          it.ID,
		OwnerId:     it.OwnerID,
		Title:       it.Title,
		Description: it.Description,
		Image:       it.Image,
		LargeImage:  it.LargeImage,
		Price:       it.Price,
		CreatedAt:   timestamppb.New(it.CreatedAt),
	}
}

func toPBCartItem(ci *models.CartItem) *pb.CartItem {
	return &pb.CartItem{Id: ci.ID, UserId: ci.UserID, ItemId: ci.ItemID, Quantity: ci.Quantity}
}

func toPBCart(c *services.Cart) *pb.CartResponse {
	resp := &pb.CartResponse{Lines: make([]*pb.CartLine, 0, len(c.Lines)), Subtotal: c.Subtotal}
	for _, l := range c.Lines {
		resp.Lines = append(resp.Lines, &pb.CartLine{
			CartItemId: l.CartItemID,
			Quantity:   l.Quantity,
			Item:       toPBItem(&l.Item),
			LineTotal:  l.LineTotal(),
		})
	}
	return resp
}

func toPBOrder(o *models.Order) *pb.Order {
	out := &pb.Order{
		Id:        o.ID,
		UserId:    o.UserID,
		Total:     o.Total,
		Currency:  o.Currency,
		ChargeId:  o.ChargeID,
		Items:     make([]*pb.OrderItem, 0, len(o.Items)),
		CreatedAt: timestamppb.New(o.CreatedAt),
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, &pb.OrderItem{
			Id:           it.ID,
			SourceItemId: it.SourceItemID,
			Title:        it.Title,
			Description:  it.Description,
			Image:        it.Image,
			LargeImage:   it.LargeImage,
			Price:        it.Price,
			Quantity:     it.Quantity,
		})
	}
	return out
}
