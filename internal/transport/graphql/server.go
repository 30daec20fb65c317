package graphql

import (
	"log/slog"
	"net/http"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	gqlast "github.com/vektah/gqlparser/v2/ast"

	"github.com/shmoon-kr/gqlauth/internal/config"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/generated"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/resolver"
)

// NewHandler builds the GraphQL HTTP handler from the root resolver.
// Introspection and query complexity are governed by config.
func NewHandler(cfg config.GraphQLConfig, res *resolver.Resolver, log *slog.Logger) http.Handler {
	srv := gqlhandler.New(generated.NewExecutableSchema(generated.Config{Resolvers: res}))

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*gqlast.QueryDocument](1000))
	srv.Use(extension.AutomaticPersistedQuery{Cache: lru.New[string](100)})

	if cfg.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	srv.SetErrorPresenter(NewErrorPresenter(log))

	return srv
}
