package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/mail"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resetFixture struct {
	svc    *ResetService
	rm     *fakeRepoManager
	mailer *fakeMailer
	now    time.Time
}

func newResetFixture(t *testing.T) *resetFixture {
	t.Helper()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.users.add(&models.User{ID: "u-1", Email: "a@x.io", Name: "Alice", PasswordHash: cryptox.HashPassword("old-password", testParams)})

	f := &resetFixture{rm: rm, mailer: &fakeMailer{}, now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	f.svc = NewResetService(db, rm, auth.NewTokenCodec([]byte("k"), time.Hour), f.mailer, time.Hour, "http://shop.local", logging.Nop{})
	f.svc.hashParams = testParams
	f.svc.now = func() time.Time { return f.now }

	orig := makeResetToken
	t.Cleanup(func() { makeResetToken = orig })
	makeResetToken = func() (string, error) { return "feedface", nil }
	return f
}

func TestRequestReset_StoresHashAndMailsLink(t *testing.T) {
	f := newResetFixture(t)

	require.NoError(t, f.svc.RequestReset(context.Background(), " A@x.io "))

	u, err := f.rm.users.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.NotNil(t, u.ResetTokenHash)
	assert.Equal(t, hashResetToken("feedface"), *u.ResetTokenHash)
	assert.NotEqual(t, "feedface", *u.ResetTokenHash)
	assert.True(t, u.ResetTokenExpiry.Equal(f.now.Add(time.Hour)))

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "a@x.io", f.mailer.sent[0].to)
	assert.Equal(t, mail.ResetSubject, f.mailer.sent[0].subject)
	assert.Contains(t, f.mailer.sent[0].html, "http://shop.local/reset?resetToken=feedface")
}

func TestRequestReset_UnknownEmailIsUniform(t *testing.T) {
	f := newResetFixture(t)

	assert.NoError(t, f.svc.RequestReset(context.Background(), "ghost@x.io"))
	assert.Empty(t, f.mailer.sent)
}

func TestRequestReset_MailFailureKeepsToken(t *testing.T) {
	f := newResetFixture(t)
	f.mailer.err = errBoom

	require.NoError(t, f.svc.RequestReset(context.Background(), "a@x.io"))

	u, err := f.rm.users.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.NotNil(t, u.ResetTokenHash)
}

func TestRequestReset_StoreFailure(t *testing.T) {
	f := newResetFixture(t)
	f.rm.users.err = errBoom

	assert.ErrorIs(t, f.svc.RequestReset(context.Background(), "a@x.io"), common.ErrorInternal)
}

func TestResetPassword_SingleUse(t *testing.T) {
	f := newResetFixture(t)
	require.NoError(t, f.svc.RequestReset(context.Background(), "a@x.io"))

	sess, err := f.svc.ResetPassword(context.Background(), "feedface", "new-password", "new-password")
	require.NoError(t, err)
	assert.Equal(t, "u-1", sess.User.ID)
	assert.NotEmpty(t, sess.Token)

	u, err := f.rm.users.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Nil(t, u.ResetTokenHash)
	assert.Nil(t, u.ResetTokenExpiry)
	ok, err := cryptox.VerifyPassword("new-password", u.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.svc.ResetPassword(context.Background(), "feedface", "other-password", "other-password")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
}

func TestResetPassword_Expiry(t *testing.T) {
	f := newResetFixture(t)
	require.NoError(t, f.svc.RequestReset(context.Background(), "a@x.io"))

	f.now = f.now.Add(time.Hour)
	_, err := f.svc.ResetPassword(context.Background(), "feedface", "new-password", "new-password")
	require.NoError(t, err, "expiry equal to now is still valid")

	require.NoError(t, f.svc.RequestReset(context.Background(), "a@x.io"))
	f.now = f.now.Add(time.Hour + time.Second)
	_, err = f.svc.ResetPassword(context.Background(), "feedface", "new-password", "new-password")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
}

func TestResetPassword_Validation(t *testing.T) {
	f := newResetFixture(t)

	_, err := f.svc.ResetPassword(context.Background(), "feedface", "new-password", "different")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.svc.ResetPassword(context.Background(), "", "new-password", "new-password")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)

	_, err = f.svc.ResetPassword(context.Background(), "wrong", "new-password", "new-password")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
}
