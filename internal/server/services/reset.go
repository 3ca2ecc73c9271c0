package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/mail"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// ResetService issues and redeems single-use password reset tokens. Only a
// SHA-256 digest of each token is stored.
type ResetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenCodec
	mailer      mail.Sender
	ttl         time.Duration
	frontendURL string
	hashParams  cryptox.Params
	logger      logging.Logger
	now         func() time.Time
}

func NewResetService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenCodec, mailer mail.Sender,
	ttl time.Duration, frontendURL string, logger logging.Logger) *ResetService {
	return &ResetService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		mailer:      mailer,
		ttl:         ttl,
		frontendURL: frontendURL,
		hashParams:  cryptox.DefaultParams,
		logger:      logger.With("module", "reset"),
		now:         time.Now,
	}
}

// makeResetToken is a seam for tests.
var makeResetToken = func() (string, error) {
	return common.MakeRandHexString(common.ResetTokenBytes)
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RequestReset issues a token for email and mails the reset link. The result
// is the same whether or not the account exists. A mail failure is logged
// and does not revoke the token.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return common.Validationf("email is required")
	}

	token, err := makeResetToken()
	if err != nil {
		return fmt.Errorf("%w: generate reset token: %v", common.ErrorInternal, err)
	}

	err = s.repomanager.Users(s.db).SetResetToken(ctx, email, hashResetToken(token), s.now().Add(s.ttl))
	if errors.Is(err, common.ErrorNotFound) {
		s.logger.Debug(ctx, "reset requested for unknown email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: store reset token: %v", common.ErrorInternal, err)
	}

	body, err := mail.RenderResetEmail(s.frontendURL, token, s.ttl.String())
	if err != nil {
		s.logger.Error(ctx, "render reset email", "error", err)
		return nil
	}
	if err := s.mailer.Send(ctx, email, mail.ResetSubject, body); err != nil {
		s.logger.Warn(ctx, "reset email not delivered", "error", err)
	}
	return nil
}

// ResetPassword redeems token, sets the new password and signs the user in.
// The token is cleared in the same statement that writes the new hash.
func (s *ResetService) ResetPassword(ctx context.Context, token, password, confirm string) (*Session, error) {
	if password != confirm {
		return nil, common.Validationf("passwords do not match")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, common.ErrInvalidOrExpiredToken
	}

	u, err := s.repomanager.Users(s.db).ConsumeResetToken(ctx,
		hashResetToken(token), cryptox.HashPassword(password, s.hashParams), s.now())
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrInvalidOrExpiredToken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: consume reset token: %v", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "password reset", "user_id", u.ID)
	return issueSession(s.tokens, u)
}
