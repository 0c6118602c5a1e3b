package infra

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/umalmyha/taskdesk/internal/auth"
	"github.com/umalmyha/taskdesk/internal/config"
	"github.com/umalmyha/taskdesk/internal/handlers"
	authmw "github.com/umalmyha/taskdesk/internal/middleware"
	"github.com/umalmyha/taskdesk/internal/service"
)

// Services is set of application services shared by http and grpc transports
type Services struct {
	Customer service.CustomerService
	Task     service.TaskService
	Draft    service.DraftService
	Auth     service.AuthService
}

// Auth is jwt tooling, both fields are nil when agent auth is disabled
type Auth struct {
	Issuer    *auth.JwtIssuer
	Validator *auth.JwtValidator
}

// NewAuth builds jwt issuer and validator from config
func NewAuth(cfg config.AuthCfg) *Auth {
	if !cfg.Enabled {
		return &Auth{}
	}

	jwtCfg := cfg.JwtCfg
	return &Auth{
		Issuer:    auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey),
		Validator: auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey),
	}
}

// NewServices builds services on top of storage, auth service is built only when issuer is present
func NewServices(st *Storage, a *Auth, rfrTokenCfg config.RefreshTokenCfg) *Services {
	customerSvc := service.NewCustomerService(st.Trx, st.Customers, st.Tasks)

	svcs := &Services{
		Customer: customerSvc,
		Task:     service.NewTaskService(st.Trx, customerSvc, st.Tasks, st.Drafts),
		Draft:    service.NewDraftService(st.Trx, st.Tasks, st.Customers, st.Drafts),
	}

	if a.Issuer != nil {
		svcs.Auth = service.NewAuthService(a.Issuer, &rfrTokenCfg, st.Trx, st.Agents, st.RefreshTokens)
	}
	return svcs
}

// Router builds echo app with every route wired
func Router(svcs *Services, v echo.Validator, a *Auth) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = v
	e.HTTPErrorHandler = handlers.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Info("http request")
			return nil
		},
	}))

	// Handlers
	taskHandler := handlers.NewTaskHTTPHandler(svcs.Task)
	draftHandler := handlers.NewDraftHTTPHandler(svcs.Draft)
	customerHandler := handlers.NewCustomerHTTPHandler(svcs.Customer)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	// agent
	var agentMw []echo.MiddlewareFunc
	if a.Validator != nil {
		agentMw = append(agentMw, authmw.Authorize(a.Validator))
	}
	api.POST("/agent/task", taskHandler.UpsertAgentTask, agentMw...)

	// auth
	if svcs.Auth != nil {
		authHandler := handlers.NewAuthHTTPHandler(svcs.Auth)

		authAPI := api.Group("/auth")
		authAPI.POST("/agents", authHandler.Register)
		authAPI.POST("/login", authHandler.Login)
		authAPI.POST("/logout", authHandler.Logout)
		authAPI.POST("/refresh", authHandler.Refresh)
	}

	// tasks
	tasksAPI := api.Group("/tasks")
	tasksAPI.GET("", taskHandler.GetAll)
	tasksAPI.POST("", taskHandler.Post)
	tasksAPI.GET("/:id", taskHandler.Get)
	tasksAPI.PATCH("/:id", taskHandler.Patch)
	tasksAPI.DELETE("/:id", taskHandler.DeleteByID)
	tasksAPI.GET("/:id/email-drafts", draftHandler.GetAll)
	tasksAPI.POST("/:id/email-drafts", draftHandler.Post)

	// customers
	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.PATCH("/:id", customerHandler.Patch)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	return e
}
