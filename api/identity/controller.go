package identity

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/icare/identity"
	"github.com/beka-birhanu/icare/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer handles HTTP requests related to authentication.
type IdentityServer struct {
	authService i.Authenticator
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.Authenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/register", c.register)
		auth.POST("/login", c.login)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {}

// register handles player registration.
func (c *IdentityServer) register(ctx *gin.Context) {
	var request AuthRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := c.authService.Register(ctx.Request.Context(), request.Name, request.Password)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, dmn.ErrPlayerNameTaken):
			status = http.StatusConflict
		case !isValidationError(err):
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": player.ID.String(), "name": player.Name})
}

// login handles player login.
func (c *IdentityServer) login(ctx *gin.Context) {
	var request AuthRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, token, err := c.authService.SignIn(ctx.Request.Context(), request.Name, request.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &AuthResponse{
		ID:     player.ID.String(),
		Name:   player.Name,
		Solved: player.Solved,
		Token:  token,
	})
}

func isValidationError(err error) bool {
	for _, target := range []error{dmn.ErrNameTooShort, dmn.ErrNameTooLong, dmn.ErrNameFormat, dmn.ErrWeakPassword} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
