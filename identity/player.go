package identity

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3

	namePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minNameLength = 3
	maxNameLength = 20

	passwordHashCost = 12
)

var (
	nameRegex = regexp.MustCompile(namePattern)

	ErrNameTooShort    = errors.New("player name too short")
	ErrNameTooLong     = errors.New("player name too long")
	ErrNameFormat      = errors.New("player name may only contain letters, digits and underscores")
	ErrWeakPassword    = errors.New("weak password")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerNameTaken = errors.New("player name already taken")
)

// Player is a registered maze solver.
type Player struct {
	ID           uuid.UUID `bson:"_id"`
	Name         string    `bson:"name"`
	PasswordHash string    `bson:"passwordHash"`
	Solved       int       `bson:"solved"` // Number of accepted proposals.
}

// PlayerConfig holds the parameters for registering a player.
type PlayerConfig struct {
	ID            uuid.UUID
	Name          string
	PlainPassword string
}

// NewPlayer validates the config and hashes the password.
func NewPlayer(config PlayerConfig) (*Player, error) {
	if err := validateName(config.Name); err != nil {
		return nil, err
	}

	if err := validatePassword(config.PlainPassword); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.PlainPassword), passwordHashCost)
	if err != nil {
		return nil, err
	}

	return &Player{
		ID:           config.ID,
		Name:         config.Name,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (p *Player) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}

func validateName(name string) error {
	switch {
	case len(name) < minNameLength:
		return ErrNameTooShort
	case len(name) > maxNameLength:
		return ErrNameTooLong
	case !nameRegex.MatchString(name):
		return ErrNameFormat
	}
	return nil
}

func validatePassword(password string) error {
	if zxcvbn.PasswordStrength(password, nil).Score < minPasswordStrengthScore {
		return ErrWeakPassword
	}
	return nil
}
