package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/icare/identity"
	"github.com/beka-birhanu/icare/infrastruture/token"
	"github.com/beka-birhanu/icare/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	registerErr error
	signInErr   error
	player      *dmn.Player
}

func (f *fakeAuth) Register(_ context.Context, name, _ string) (*dmn.Player, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &dmn.Player{ID: f.player.ID, Name: name}, nil
}

func (f *fakeAuth) SignIn(context.Context, string, string) (*dmn.Player, string, error) {
	if f.signInErr != nil {
		return nil, "", f.signInErr
	}
	return f.player, "signed-token", nil
}

func newEngine(a *fakeAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewIdentityServer(a).RegisterPublic(engine.Group("/v1"))
	return engine
}

func post(engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	player := &dmn.Player{ID: uuid.New(), Name: "daedalus"}

	tests := []struct {
		name       string
		err        error
		body       interface{}
		wantStatus int
	}{
		{name: "Created", body: AuthRequest{Name: "daedalus", Password: "pw"}, wantStatus: http.StatusCreated},
		{name: "Missing password", body: map[string]string{"name": "daedalus"}, wantStatus: http.StatusBadRequest},
		{name: "Weak password", err: dmn.ErrWeakPassword, body: AuthRequest{Name: "daedalus", Password: "pw"}, wantStatus: http.StatusBadRequest},
		{name: "Name taken", err: dmn.ErrPlayerNameTaken, body: AuthRequest{Name: "daedalus", Password: "pw"}, wantStatus: http.StatusConflict},
		{name: "Storage failure", err: errors.New("mongo down"), body: AuthRequest{Name: "daedalus", Password: "pw"}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(&fakeAuth{registerErr: tt.err, player: player})
			rec := post(engine, "/v1/auth/register", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	player := &dmn.Player{ID: uuid.New(), Name: "daedalus", Solved: 3}

	t.Run("Returns the token", func(t *testing.T) {
		rec := post(newEngine(&fakeAuth{player: player}), "/v1/auth/login", AuthRequest{Name: "daedalus", Password: "pw"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, AuthResponse{ID: player.ID.String(), Name: "daedalus", Solved: 3, Token: "signed-token"}, resp)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		rec := post(newEngine(&fakeAuth{player: player, signInErr: service.ErrBadCredentials}), "/v1/auth/login", AuthRequest{Name: "daedalus", Password: "pw"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenizer := token.NewJwtService("secret", "icare")
	playerID := uuid.New()

	engine := gin.New()
	engine.GET("/whoami", Authoriz(tokenizer), func(c *gin.Context) {
		id, ok := PlayerID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	sign := func(claims map[string]interface{}) string {
		tok, err := tokenizer.Generate(claims, time.Hour)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "Valid token", header: "Bearer " + sign(map[string]interface{}{service.ClaimPlayerID: playerID.String()}), wantStatus: http.StatusOK},
		{name: "Scheme is case insensitive", header: "bearer " + sign(map[string]interface{}{service.ClaimPlayerID: playerID.String()}), wantStatus: http.StatusOK},
		{name: "No header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "Missing player claim", header: "Bearer " + sign(map[string]interface{}{"name": "daedalus"}), wantStatus: http.StatusUnauthorized},
		{name: "Player claim is not a uuid", header: "Bearer " + sign(map[string]interface{}{service.ClaimPlayerID: "42"}), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, playerID.String(), rec.Body.String())
			}
		})
	}
}
