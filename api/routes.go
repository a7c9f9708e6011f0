package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expensum/internal/config"
	"github.com/carson-networks/expensum/internal/handlers/v1/auth"
	"github.com/carson-networks/expensum/internal/handlers/v1/budget"
	"github.com/carson-networks/expensum/internal/handlers/v1/category"
	"github.com/carson-networks/expensum/internal/handlers/v1/dashboard"
	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/expense"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/handlers/v1/status"
	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/service"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/token"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Config  *config.Config
	Service *service.Service
	Tokens  *token.Service
	Storage *storage.Storage
}

// Handler builds the full HTTP surface: the huma API, /status and CORS.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	envelope.Install()
	humaConfig := huma.DefaultConfig("Expensum", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, logging.RecordCause)

	api := humago.New(mux, humaConfig)
	api.UseMiddleware(logging.Middleware(r.Logger))
	r.register(api)

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return cors.New(cors.Options{
		AllowedOrigins:   []string{r.Config.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}).Handler(mux)
}

func (r *Rest) register(api huma.API) {
	cookies := session.Cookies{
		Secure:     r.Config.IsProduction(),
		AccessTTL:  r.Tokens.TTL(token.KindAccess),
		RefreshTTL: r.Tokens.TTL(token.KindRefresh),
	}
	svc := r.Service

	auth.NewSignupHandler(svc.Auth, cookies).Register(api)
	auth.NewLoginHandler(svc.Auth, cookies).Register(api)
	auth.NewRefreshHandler(svc.Auth, cookies).Register(api)
	auth.NewLogoutHandler(cookies).Register(api)
	auth.NewMeHandler(svc.Auth, r.Tokens).Register(api)

	category.NewListCategoriesHandler(svc.Category, r.Tokens).Register(api)
	category.NewCreateCategoryHandler(svc.Category, r.Tokens).Register(api)
	category.NewRenameCategoryHandler(svc.Category, r.Tokens).Register(api)
	category.NewDeleteCategoryHandler(svc.Category, r.Tokens).Register(api)

	expense.NewListExpensesHandler(svc.Expense, r.Tokens).Register(api)
	expense.NewGetExpenseHandler(svc.Expense, r.Tokens).Register(api)
	expense.NewCreateExpenseHandler(svc.Expense, r.Tokens).Register(api)
	expense.NewDeleteExpenseHandler(svc.Expense, r.Tokens).Register(api)

	budget.NewCreateBudgetHandler(svc.Budget, r.Tokens).Register(api)
	budget.NewCurrentBudgetHandler(svc.Budget, r.Tokens).Register(api)
	budget.NewListBudgetsHandler(svc.Budget, r.Tokens).Register(api)
	budget.NewUpdateBudgetHandler(svc.Budget, r.Tokens).Register(api)
	budget.NewDeleteBudgetHandler(svc.Budget, r.Tokens).Register(api)

	dashboard.NewGetDashboardHandler(svc.Dashboard, r.Tokens).Register(api)
}

// Serve listens until ctx is canceled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Config.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Config.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
