package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	pb "github.com/dmitrijs2005/storefront/internal/proto"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newInterceptorServer(r IdentityResolver) *GRPCServer {
	return NewGRPCServer("", logging.Nop{}, r, Services{})
}

var getCartInfo = &grpc.UnaryServerInfo{FullMethod: pb.Storefront_GetCart_FullMethodName}

func incoming(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestIdentityInterceptor_AnonymousProceeds(t *testing.T) {
	s := newInterceptorServer(&tokenResolver{})

	called := false
	_, err := s.identityInterceptor(context.Background(), nil, getCartInfo, func(ctx context.Context, req any) (any, error) {
		called = true
		_, ok := auth.UserIDFrom(ctx)
		assert.False(t, ok)
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestIdentityInterceptor_ValidToken(t *testing.T) {
	u := &models.User{ID: "u-1", Permissions: models.Permissions{models.PermissionUser}}
	s := newInterceptorServer(&tokenResolver{users: map[string]*models.User{"u-1": u}})

	resp, err := s.identityInterceptor(incoming("tok:u-1"), nil, getCartInfo, func(ctx context.Context, req any) (any, error) {
		got, err := auth.CurrentUser(ctx)
		require.NoError(t, err)
		return got.ID, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", resp)
}

func TestIdentityInterceptor_InvalidTokenRejected(t *testing.T) {
	s := newInterceptorServer(&tokenResolver{})

	_, err := s.identityInterceptor(incoming("garbage"), nil, getCartInfo, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for an invalid credential")
		return nil, nil
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, api.ReasonInvalidCredential, reasonOf(t, err))
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newInterceptorServer(&tokenResolver{})
	want := status.Error(codes.NotFound, "nope")

	resp, err := s.loggingInterceptor(context.Background(), nil, getCartInfo, func(ctx context.Context, req any) (any, error) {
		return "resp", want
	})
	assert.Equal(t, "resp", resp)
	assert.Equal(t, want, err)
}
