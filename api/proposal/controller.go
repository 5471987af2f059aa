package proposalapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/icare/api/identity"
	"github.com/beka-birhanu/icare/domain"
	"github.com/beka-birhanu/icare/route"
	"github.com/beka-birhanu/icare/service/i"
	"github.com/gin-gonic/gin"
)

// ProposalController serves the course and the player's proposal.
type ProposalController struct {
	referee i.Referee
}

// NewProposalController initializes a ProposalController.
func NewProposalController(r i.Referee) (*ProposalController, error) {
	if r == nil {
		return nil, errors.New("referee is nil")
	}
	return &ProposalController{referee: r}, nil
}

// RegisterPublic registers public routes.
func (pc *ProposalController) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/course", pc.course)
	rg.GET("/directions", pc.directions)
	rg.GET("/leaderboard", pc.leaderboard)
}

// RegisterProtected registers protected routes.
func (pc *ProposalController) RegisterProtected(rg *gin.RouterGroup) {
	proposal := rg.Group("/proposal")
	{
		proposal.GET("", pc.draft)
		proposal.DELETE("", pc.clear)
		proposal.POST("/steps", pc.appendStep)
		proposal.PATCH("/steps/:index", pc.updateCount)
		proposal.DELETE("/steps/:index", pc.removeStep)
		proposal.POST("/steps/:index/move", pc.moveStep)
		proposal.POST("/submit", pc.submit)
		proposal.GET("/attempts", pc.attempts)
	}
}

func (pc *ProposalController) course(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, pc.referee.Course())
}

func (pc *ProposalController) directions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, route.Directions())
}

func (pc *ProposalController) draft(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	steps, err := pc.referee.Draft(ctx.Request.Context(), playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProposalResponse(steps))
}

func (pc *ProposalController) clear(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	if err := pc.referee.Clear(ctx.Request.Context(), playerID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (pc *ProposalController) appendStep(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request AppendStepRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir, err := route.ParseDirection(request.Direction)
	if err != nil {
		writeError(ctx, err)
		return
	}

	steps, err := pc.referee.AppendStep(ctx.Request.Context(), playerID, dir, request.Count)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newProposalResponse(steps))
}

func (pc *ProposalController) updateCount(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	index, ok := indexParam(ctx)
	if !ok {
		return
	}

	var request UpdateCountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps, err := pc.referee.UpdateCount(ctx.Request.Context(), playerID, index, request.Count)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProposalResponse(steps))
}

func (pc *ProposalController) removeStep(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	index, ok := indexParam(ctx)
	if !ok {
		return
	}

	steps, err := pc.referee.RemoveStep(ctx.Request.Context(), playerID, index)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProposalResponse(steps))
}

func (pc *ProposalController) moveStep(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	index, ok := indexParam(ctx)
	if !ok {
		return
	}

	var request MoveStepRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps, err := pc.referee.ReorderStep(ctx.Request.Context(), playerID, index, *request.To)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProposalResponse(steps))
}

func (pc *ProposalController) submit(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	attempt, err := pc.referee.Submit(ctx.Request.Context(), playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newVerdictResponse(attempt))
}

func (pc *ProposalController) attempts(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	limit, ok := limitQuery(ctx)
	if !ok {
		return
	}

	attempts, err := pc.referee.Attempts(ctx.Request.Context(), playerID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]*VerdictResponse, 0, len(attempts))
	for _, a := range attempts {
		response = append(response, newVerdictResponse(a))
	}
	ctx.JSON(http.StatusOK, response)
}

func (pc *ProposalController) leaderboard(ctx *gin.Context) {
	limit, ok := limitQuery(ctx)
	if !ok {
		return
	}

	standings, err := pc.referee.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, standings)
}

// limitQuery reads the optional limit query parameter, 0 when absent.
func limitQuery(ctx *gin.Context) (int64, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}

func indexParam(ctx *gin.Context) (int, bool) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "step index must be an integer"})
		return 0, false
	}
	return index, true
}

// writeError maps domain errors to HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, route.ErrInvalidCount), errors.Is(err, route.ErrUnknownDirection):
		status = http.StatusBadRequest
	case errors.Is(err, route.ErrIndexOutOfRange):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDraftBusy):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	ctx.JSON(status, gin.H{"error": message})
}
