package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmiddleware "sundar_marbles/internal/middleware"
	httprouters "sundar_marbles/internal/transport/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log      *slog.Logger
	e        *echo.Echo
	routers  *httprouters.Routers
	host     string
	port     string
	token    string
	mediaDir string
	mediaURL string
}

func New(log *slog.Logger, token string, host, port string, mediaDir, mediaURL string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:      log,
		e:        e,
		routers:  routers,
		host:     host,
		port:     port,
		token:    token,
		mediaDir: mediaDir,
		mediaURL: mediaURL,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Uploaded images are served straight from disk.
	s.e.Static(s.mediaURL, s.mediaDir)

	api := s.e.Group("/api")
	{
		contact := api.Group("/contact")
		{
			contact.POST("/message/", s.routers.SubmitContactMessage)
			contact.GET("/info/", s.routers.GetContactInfo)
			contact.POST("/newsletter/", s.routers.SubscribeNewsletter)
			contact.POST("/newsletter/unsubscribe/", s.routers.UnsubscribeNewsletter)

			whatsapp := contact.Group("/whatsapp")
			whatsapp.Use(echojwt.WithConfig(echojwt.Config{
				SigningKey: []byte(s.token),
			}))
			{
				whatsapp.POST("/:id/", s.routers.GenerateWhatsAppLink)
			}
		}

		products := api.Group("/products")
		{
			products.GET("/categories/", s.routers.ListProductCategories)
			products.GET("/categories/with-count/", s.routers.ListProductCategoriesWithCount)
			products.GET("/", s.routers.ListProducts)
			products.GET("/featured/", s.routers.ListFeaturedProducts)
			products.GET("/:slug/", s.routers.GetProductBySlug)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("/categories/", s.routers.ListGalleryCategories)
			gallery.GET("/categories/with-count/", s.routers.ListGalleryCategoriesWithCount)
			gallery.GET("/images/", s.routers.ListGalleryImages)
			gallery.GET("/images/featured/", s.routers.ListFeaturedGalleryImages)
			gallery.GET("/images/:id/", s.routers.GetGalleryImage)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login/", s.routers.AdminLogin)

			staff := admin.Group("")
			staff.Use(echojwt.WithConfig(echojwt.Config{
				SigningKey: []byte(s.token),
			}))
			{
				staff.GET("/contact/messages/", s.routers.ListContactMessages)
				staff.POST("/contact/messages/:id/read/", s.routers.MarkMessageRead)
				staff.POST("/contact/messages/:id/replied/", s.routers.MarkMessageReplied)
				staff.POST("/contact/messages/:id/closed/", s.routers.MarkMessageClosed)
				staff.PATCH("/contact/messages/:id/", s.routers.UpdateMessageModeration)
				staff.POST("/media/upload/", s.routers.UploadMedia)
			}
		}
	}
}
