package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/questionario-service/configs"
	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/pkg/wrapper"
)

type restServer struct {
	serverEngine *echo.Echo
	httpPort     string
}

// NewRESTServer create new REST server
func NewRESTServer(service factory.ServiceFactory) factory.AppServerFactory {
	server := &restServer{
		serverEngine: echo.New(),
		httpPort:     fmt.Sprintf(":%d", configs.BaseEnv().HTTPPort),
	}
	server.serverEngine.HideBanner = true
	server.serverEngine.HidePort = true

	server.serverEngine.GET("/", func(c echo.Context) error {
		message := fmt.Sprintf("Service %s up and running", service.Name())
		return wrapper.NewHTTPResponse(http.StatusOK, message).JSON(c.Response())
	})

	restRootPath := server.serverEngine.Group("")
	for _, m := range service.GetModules() {
		if h := m.RestHandler(); h != nil {
			h.Mount(restRootPath)
		}
	}

	return server
}

func (s *restServer) Serve() {
	fmt.Printf("\x1b[34;1m⇨ HTTP server run at port [::]%s\x1b[0m\n\n", s.httpPort)

	if err := s.serverEngine.Start(s.httpPort); err != nil && err != http.ErrServerClosed {
		panic(fmt.Errorf("rest server: %v", err))
	}
}

func (s *restServer) Shutdown(ctx context.Context) {
	defer log.Println("\x1b[33;1mStopping HTTP server:\x1b[0m \x1b[32;1mSUCCESS\x1b[0m")

	s.serverEngine.Shutdown(ctx)
}

func (s *restServer) Name() string {
	return string(factory.REST)
}
