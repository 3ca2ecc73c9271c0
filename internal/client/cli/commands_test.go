package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	pb "github.com/dmitrijs2005/storefront/internal/proto"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	shopAPI // unimplemented methods panic

	user      *pb.User
	cart      *pb.CartResponse
	order     *pb.Order
	err       error
	lastToken string
	lastPerms []string
	lastItem  *pb.CreateItemRequest
	passwords []string
	closed    bool
}

func (f *fakeAPI) Signin(_ context.Context, email, password string) (*pb.User, error) {
	f.passwords = append(f.passwords, password)
	return f.user, f.err
}

func (f *fakeAPI) Signout(context.Context) error { return nil }

func (f *fakeAPI) ResetPassword(_ context.Context, token, password, confirm string) (*pb.User, error) {
	f.lastToken = token
	f.passwords = append(f.passwords, password, confirm)
	return f.user, f.err
}

func (f *fakeAPI) UpdatePermissions(_ context.Context, userID string, perms []string) (*pb.User, error) {
	f.lastPerms = perms
	return &pb.User{Id: userID, Permissions: perms}, f.err
}

func (f *fakeAPI) CreateItem(_ context.Context, req *pb.CreateItemRequest) (*pb.Item, error) {
	f.lastItem = req
	return &pb.Item{Id: "it-9", Title: req.Title, Price: req.Price}, f.err
}

func (f *fakeAPI) GetCart(context.Context) (*pb.CartResponse, error) { return f.cart, f.err }

func (f *fakeAPI) CreateOrder(_ context.Context, token string) (*pb.Order, error) {
	f.lastToken = token
	return f.order, f.err
}

func (f *fakeAPI) Close() error {
	f.closed = true
	return nil
}

func newTestApp(t *testing.T, f *fakeAPI, input string) *App {
	t.Helper()
	return &App{
		config: &config.Config{RequestTimeout: time.Second},
		api:    f,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    io.Discard,
	}
}

func stubPasswords(t *testing.T, values ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(string, io.Writer) (string, error) {
		v := values[0]
		values = values[1:]
		return v, nil
	}
}

func TestSignin_PromptsForMissingEmail(t *testing.T) {
	captureOutput(t)
	stubPasswords(t, "pw-123456")
	f := &fakeAPI{user: &pb.User{Id: "u-1", Email: "alice@example.com"}}
	a := newTestApp(t, f, "alice@example.com\n")

	require.NoError(t, a.Signin(context.Background(), nil))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "alice@example.com", a.status())
	assert.Equal(t, []string{"pw-123456"}, f.passwords)

	require.NoError(t, a.Signout(context.Background(), nil))
	assert.False(t, a.isLoggedIn())
}

func TestResetPassword_AsksTwice(t *testing.T) {
	captureOutput(t)
	stubPasswords(t, "new-pass-1", "new-pass-1")
	f := &fakeAPI{user: &pb.User{Id: "u-1", Email: "alice@example.com"}}
	a := newTestApp(t, f, "")

	require.NoError(t, a.ResetPassword(context.Background(), []string{"feedface"}))
	assert.Equal(t, "feedface", f.lastToken)
	assert.Equal(t, []string{"new-pass-1", "new-pass-1"}, f.passwords)
}

func TestGrant_SplitsPermissions(t *testing.T) {
	out := captureOutput(t)
	f := &fakeAPI{}
	a := newTestApp(t, f, "")

	assert.ErrorIs(t, a.Grant(context.Background(), []string{"u-2"}), errUsage)

	require.NoError(t, a.Grant(context.Background(), []string{"u-2", "ADMIN,ITEMDELETE"}))
	assert.Equal(t, []string{"ADMIN", "ITEMDELETE"}, f.lastPerms)
	assert.Contains(t, *out, "u-2 now has ADMIN,ITEMDELETE")
}

func TestCreateItem_ParsesPrice(t *testing.T) {
	captureOutput(t)
	f := &fakeAPI{}

	a := newTestApp(t, f, "Hat\nWarm wool hat\n2000\n")
	require.NoError(t, a.CreateItem(context.Background(), nil))
	require.NotNil(t, f.lastItem)
	assert.Equal(t, "Hat", f.lastItem.GetTitle())
	assert.Equal(t, "Warm wool hat", f.lastItem.GetDescription())
	assert.Equal(t, int64(2000), f.lastItem.GetPrice())

	a = newTestApp(t, f, "Hat\n\ntwenty\n")
	assert.ErrorContains(t, a.CreateItem(context.Background(), nil), "price")
}

func TestCartAndCheckout_Output(t *testing.T) {
	out := captureOutput(t)
	f := &fakeAPI{
		cart: &pb.CartResponse{
			Lines: []*pb.CartLine{
				{CartItemId: "ci-1", Quantity: 2, Item: &pb.Item{Title: "Hat", Price: 2000}, LineTotal: 4000},
				{CartItemId: "ci-2", Quantity: 1, Item: &pb.Item{Title: "Sock", Price: 500}, LineTotal: 500},
			},
			Subtotal: 4500,
		},
		order: &pb.Order{Id: "o-1", Total: 4500, Currency: "USD", ChargeId: "ch-1"},
	}
	a := newTestApp(t, f, "")

	require.NoError(t, a.Cart(context.Background(), nil))
	assert.Contains(t, *out, "Subtotal: 45.00")

	require.NoError(t, a.Checkout(context.Background(), []string{"tok_visa"}))
	assert.Equal(t, "tok_visa", f.lastToken)
	assert.Contains(t, *out, "Order o-1 placed: 45.00 USD (charge ch-1)")
}

func TestCart_Empty(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{cart: &pb.CartResponse{}}, "")

	require.NoError(t, a.Cart(context.Background(), nil))
	assert.Contains(t, *out, "Cart is empty")
}

func TestArg_EmptyPromptIsUsageError(t *testing.T) {
	a := newTestApp(t, &fakeAPI{}, "\n")
	_, err := a.arg(nil, 0, "Item id")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_ClosesClient(t *testing.T) {
	captureOutput(t)
	f := &fakeAPI{}
	a := newTestApp(t, f, "exit\n")
	a.Run(context.Background())
	assert.True(t, f.closed)
}
