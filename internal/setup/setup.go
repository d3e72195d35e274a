package setup

import (
	"net/http"

	"github.com/ceylontrip/ceylontrip/internal/config"
	"github.com/ceylontrip/ceylontrip/internal/handler"
	"github.com/ceylontrip/ceylontrip/internal/jwt"
	"github.com/ceylontrip/ceylontrip/internal/middleware"
	"github.com/ceylontrip/ceylontrip/internal/router"
	"github.com/ceylontrip/ceylontrip/internal/service"
	"github.com/ceylontrip/ceylontrip/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage   *pg.Storage
	Handler   *handler.Handler
	Dashboard *service.Dashboard
	Tokens    jwt.TokenService
	Router    http.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.JwtSecret(), cfg.TokenTTL())
	renderer := service.NewRenderer()

	auth := service.NewAuth(storage, tokens)
	destinations := service.NewDestination(storage, renderer)
	attractions := service.NewAttraction(storage, renderer)
	hotels := service.NewHotel(storage, renderer)
	events := service.NewEvent(storage, renderer)
	leads := service.NewLead(storage)
	dashboard := service.NewDashboard(storage)

	h := handler.New(auth, destinations, attractions, hotels, events, leads, dashboard, storage, cfg)
	guard := middleware.NewAuth(tokens, storage)

	return &Dependencies{
		Storage:   storage,
		Handler:   h,
		Dashboard: dashboard,
		Tokens:    tokens,
		Router:    router.New(h, guard, cfg),
	}, nil
}
