// Package sessionservice manages business logic layer of access sessions.
package sessionservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/configpkg"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
	"github.com/ledgerlite/ledgerlite/pkg/passpkg"
	"github.com/ledgerlite/ledgerlite/pkg/tokenpkg"
)

// Owner is the token subject of the single-user ledger.
const Owner = "owner"

// Service issues access tokens in exchange for the configured password.
type Service struct {
	// TokenMaker verifies the tokens this service issues.
	TokenMaker tokenpkg.Maker

	hashedPassword string
	tokenDuration  time.Duration
}

// New returns session service struct. The configured access password is
// hashed once at startup.
func New(config configpkg.Config, tokenMaker tokenpkg.Maker) (*Service, error) {
	hashedPassword, err := passpkg.Hash(config.AccessPassword)
	if err != nil {
		return nil, err
	}

	return &Service{
		TokenMaker:     tokenMaker,
		hashedPassword: hashedPassword,
		tokenDuration:  config.AccessTokenDuration,
	}, nil
}

// Login checks the password and returns a fresh access token with its expiry.
func (s *Service) Login(ctx context.Context, password string) (string, time.Time, error) {
	l := zerolog.Ctx(ctx)

	if err := passpkg.Check(password, s.hashedPassword); err != nil {
		l.Warn().Err(err).Send()
		return "", time.Time{}, domain.ErrWrongPassword
	}

	token, payload, err := s.TokenMaker.CreateToken(Owner, s.tokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return "", time.Time{}, errorspkg.ErrInternal
	}

	return token, payload.ExpiredAt, nil
}
