package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/budget"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/category"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/closeout"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/goal"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/report"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/shopping"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/status"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/operator"
	"github.com/carson-networks/budget-engine/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator

	// Predictor and Summarizer are optional; their endpoints are only
	// registered when the collaborator is wired in.
	Predictor  service.CategoryPredictor
	Summarizer service.InsightSummarizer
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	apiConfig := huma.DefaultConfig("budget-engine", "1.0.0")
	humaAPI := humago.New(mux, apiConfig)
	humaAPI.UseMiddleware(logging.NewHumaMiddleware(r.Logger))

	budget.NewSetupBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewGetBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewUpdateBudgetHandler(r.Operator).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	transaction.NewRecordTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewEditTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	if r.Predictor != nil {
		transaction.NewPredictCategoryHandler(r.Predictor, r.Service.Budget).Register(humaAPI)
	}

	goal.NewCreateGoalHandler(r.Operator).Register(humaAPI)
	goal.NewGetGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewUpdateGoalHandler(r.Operator).Register(humaAPI)
	goal.NewDeleteGoalHandler(r.Operator).Register(humaAPI)
	goal.NewContributeGoalHandler(r.Operator).Register(humaAPI)

	shopping.NewCreateListHandler(r.Operator).Register(humaAPI)
	shopping.NewGetListsHandler(r.Service.Shopping).Register(humaAPI)
	shopping.NewUpdateListHandler(r.Operator).Register(humaAPI)
	shopping.NewDeleteListHandler(r.Operator).Register(humaAPI)
	shopping.NewCheckoutListHandler(r.Operator).Register(humaAPI)

	closeout.NewGetSummaryHandler(r.Service.Closeout).Register(humaAPI)
	closeout.NewSweepHandler(r.Service.Closeout, r.Operator).Register(humaAPI)
	closeout.NewStartNewMonthHandler(r.Service.Closeout, r.Operator).Register(humaAPI)

	report.NewGetReportsHandler(r.Service.Report).Register(humaAPI)
	if r.Summarizer != nil {
		report.NewGetInsightsHandler(r.Service.Report, r.Summarizer).Register(humaAPI)
	}

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
