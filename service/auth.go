package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/icare/identity"
	"github.com/beka-birhanu/icare/service/i"
	"github.com/google/uuid"
)

const (
	tokenLifetime = 24 * time.Hour

	// ClaimPlayerID is the token claim carrying the player's ID.
	ClaimPlayerID = "playerID"
	// ClaimPlayerName is the token claim carrying the player's name.
	ClaimPlayerName = "name"
)

var (
	ErrBadCredentials = errors.New("invalid player name or password")
)

// Auth registers players and hands out tokens.
type Auth struct {
	players   i.PlayerRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService wires an Auth service.
func NewAuthService(players i.PlayerRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	if players == nil || tokenizer == nil || logger == nil {
		return nil, ErrMissingDependency
	}
	return &Auth{
		players:   players,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Register implements i.Authenticator.
func (a *Auth) Register(ctx context.Context, name, password string) (*identity.Player, error) {
	player, err := identity.NewPlayer(identity.PlayerConfig{
		ID:            uuid.New(),
		Name:          name,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.players.Save(ctx, player); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("registered player %s (%s)", player.Name, player.ID))
	return player, nil
}

// SignIn implements i.Authenticator.
func (a *Auth) SignIn(ctx context.Context, name, password string) (*identity.Player, string, error) {
	player, err := a.players.ByName(ctx, name)
	if err != nil {
		if !errors.Is(err, identity.ErrPlayerNotFound) {
			a.logger.Error(fmt.Sprintf("looking up player %s: %s", name, err))
		}
		return nil, "", ErrBadCredentials
	}

	if !player.VerifyPassword(password) {
		return nil, "", ErrBadCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimPlayerID:   player.ID.String(),
		ClaimPlayerName: player.Name,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return player, token, nil
}
