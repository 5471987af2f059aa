package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/icare/api"
	api_i "github.com/beka-birhanu/icare/api/i"
	"github.com/beka-birhanu/icare/api/identity"
	proposalapi "github.com/beka-birhanu/icare/api/proposal"
	"github.com/beka-birhanu/icare/config"
	"github.com/beka-birhanu/icare/infrastruture/draftstore"
	logger "github.com/beka-birhanu/icare/infrastruture/log"
	"github.com/beka-birhanu/icare/infrastruture/metrics"
	"github.com/beka-birhanu/icare/infrastruture/repo"
	"github.com/beka-birhanu/icare/infrastruture/sortedstorage"
	"github.com/beka-birhanu/icare/infrastruture/token"
	"github.com/beka-birhanu/icare/maze"
	"github.com/beka-birhanu/icare/route"
	"github.com/beka-birhanu/icare/service"
	"github.com/beka-birhanu/icare/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	playerRepo         i.PlayerRepo
	attemptRepo        i.AttemptRepo
	draftStore         i.DraftStore
	leaderboard        i.Leaderboard
	courseMaze         *maze.Maze
	verdictMetrics     *metrics.Verdicts
	referee            i.Referee
	proposalController api_i.Controller
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	authController     api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	var err error
	playerRepo, err = repo.NewPlayerRepo(ctx, client, config.Envs.DBName, "players")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating player repository: %v", err))
		os.Exit(1)
	}
	attemptRepo = repo.NewAttemptRepo(client, config.Envs.DBName, "attempts")
	appLogger.Info("Repositories initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initDraftStore(client *redis.Client) {
	var err error
	draftStore, err = draftstore.NewRedisDraftStore(client, draftstore.Options{
		TTL: time.Duration(config.Envs.DraftTTL) * time.Second,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating draft store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Draft store initialized")
}

func initLeaderboard(client *redis.Client) {
	var err error
	leaderboard, err = sortedstorage.NewRedisLeaderboard(client, "icare:leaderboard")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initMaze() {
	seed := config.Envs.MazeSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var err error
	courseMaze, err = maze.New(config.Envs.MazeRows, config.Envs.MazeCols, maze.WithSeed(seed))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Maze %dx%d generated with seed %d", courseMaze.Rows(), courseMaze.Cols(), seed))
}

// courseEnds resolves the configured start and goal, where a negative goal
// coordinate counts from the far edge.
func courseEnds(grid route.Grid) (route.Cell, route.Cell) {
	start := route.Cell{Row: config.Envs.StartRow, Col: config.Envs.StartCol}
	goal := route.Cell{Row: config.Envs.GoalRow, Col: config.Envs.GoalCol}
	if goal.Row < 0 {
		goal.Row += grid.Rows
	}
	if goal.Col < 0 {
		goal.Col += grid.Cols
	}
	return start, goal
}

func initReferee() {
	verdictMetrics = metrics.NewVerdicts("icare")
	start, goal := courseEnds(courseMaze.Grid())

	var err error
	referee, err = service.NewReferee(&service.RefereeConfig{
		Maze:     courseMaze,
		Start:    start,
		Goal:     goal,
		Drafts:   draftStore,
		Attempts: attemptRepo,
		Players:  playerRepo,
		Recorder: verdictMetrics,
		Board:    leaderboard,
		Logger:   newLogger("REFEREE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating referee: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Referee initialized, course %s -> %s", start, goal))
}

func initProposalController() {
	var err error
	proposalController, err = proposalapi.NewProposalController(referee)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating proposal controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Proposal controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(playerRepo, jwtTokenizer, newLogger("AUTH", config.ColorPurple))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, proposalController},
		AuthorizationMiddleware: identity.Authoriz(t),
		MetricsHandler:          verdictMetrics.Handler(),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	gin.SetMode(config.Envs.GinMode)
	appLogger = newLogger("APP", config.ColorGreen)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRepos(ctx, mongoClient)

	initRedis(ctx)
	defer redisClient.Close()
	initDraftStore(redisClient)
	initLeaderboard(redisClient)

	initMaze()
	initReferee()
	initProposalController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
