package httpserver

import (
	_ "qdevmovies/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title qdevmovies API
// @version 1.0
// @description Read-only movie catalog with search.
// @BasePath /

func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}
