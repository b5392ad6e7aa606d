package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/balaios/fast-zero-madr/internal/auth"
	"github.com/balaios/fast-zero-madr/internal/handler"
	"github.com/balaios/fast-zero-madr/internal/repository"
)

// JWT builds the bearer-token middleware. Parsing is delegated to the
// token codec so signature and expiry checks share one code path, and the
// error handler emits the uniform 401 body whatever the rejection reason.
func JWT(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ParseToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return handler.Unauthorized(c)
		},
	})
}

// Register wires routes and middleware. The English and Portuguese route
// families are thin shapes over the same handlers' services.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	novelistHandler *handler.NovelistHandler,
	bookHandler *handler.BookHandler,
	romancistaHandler *handler.RomancistaHandler,
	livroHandler *handler.LivroHandler,
) {
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes: registration and login only.
	e.POST("/auth/token", authHandler.Token)
	e.POST("/user", userHandler.Create)
	e.POST("/users", userHandler.Create)

	// Everything else requires a resolvable bearer token.
	secured := e.Group("", JWT(jwtService), handler.CurrentUserMiddleware(userRepo))

	secured.POST("/auth/refresh_token", authHandler.RefreshToken)

	secured.PUT("/user/:id", userHandler.Update)
	secured.DELETE("/user/:id", userHandler.Delete)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete)

	secured.POST("/novelists", novelistHandler.Create)
	secured.GET("/novelists", novelistHandler.List)
	secured.GET("/novelists/:id", novelistHandler.Get)
	secured.PUT("/novelists/:id", novelistHandler.Update)
	secured.DELETE("/novelists/:id", novelistHandler.Delete)

	secured.POST("/books", bookHandler.Create)
	secured.GET("/books", bookHandler.List)
	secured.GET("/books/:id", bookHandler.Get)
	secured.PUT("/books/:id", bookHandler.Update)
	secured.DELETE("/books/:id", bookHandler.Delete)

	secured.POST("/romancista", romancistaHandler.Create)
	secured.GET("/romancista", romancistaHandler.List)
	secured.GET("/romancista/:id", romancistaHandler.Get)
	secured.PUT("/romancista/:id", romancistaHandler.Update)
	secured.DELETE("/romancista/:id", romancistaHandler.Delete)

	secured.POST("/livro", livroHandler.Create)
	secured.GET("/livro", livroHandler.List)
	secured.GET("/livro/:id", livroHandler.Get)
	secured.PUT("/livro/:id", livroHandler.Update)
	secured.DELETE("/livro/:id", livroHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
