package wire

import (
	"net/http"

	"restaurant-orders/internal/adaptor"
	"restaurant-orders/internal/data/repository"
	"restaurant-orders/internal/usecase"
	"restaurant-orders/pkg/middleware"
	"restaurant-orders/pkg/token"

	"github.com/go-chi/chi/v5"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring connects the resolver to the parsed schema and mounts it on the
// router behind the session-context middleware.
func Wiring(service *usecase.Service, users repository.UserRepository, codec *token.Codec, logger *zap.Logger) *App {
	resolver := adaptor.NewResolver(service, logger)
	schema := graphql.MustParseSchema(adaptor.Schema, resolver)

	router := setupRouter(schema, users, codec, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	schema *graphql.Schema,
	users repository.UserRepository,
	codec *token.Codec,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Single GraphQL endpoint. The context middleware resolves the bearer
	// token into a current user; anonymous requests pass through.
	r.With(middleware.Context(users, codec, logger)).
		Method(http.MethodPost, "/graphql", &relay.Handler{Schema: schema})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
