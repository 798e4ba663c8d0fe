package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/http/handler"
	"github.com/mjdigitalmedia/agency-api/internal/notify"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"github.com/mjdigitalmedia/agency-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingSender captures dispatched messages for assertions
type recordingSender struct {
	messages []notify.Message
	fail     bool
}

func (r *recordingSender) Name() string { return "recording" }

func (r *recordingSender) Send(ctx context.Context, msg notify.Message) (string, error) {
	if r.fail {
		return "", context.DeadlineExceeded
	}
	r.messages = append(r.messages, msg)
	return "test-id", nil
}

type testEnv struct {
	db     *gorm.DB
	sender *recordingSender
	router http.Handler
}

// newTestEnv wires the full handler stack over an in-memory database. The
// named shared-cache DSN keeps every pooled connection on the same database.
func newTestEnv(t *testing.T) *testEnv {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Lead{},
		&domain.PortfolioProject{},
		&domain.Video{},
	))

	log := zap.NewNop()
	sender := &recordingSender{}
	dispatcher := notify.NewDispatcher(log, sender)

	leadService := service.NewLeadService(repository.NewLeadRepository(db), dispatcher, "admin@example.com", log)
	portfolioService := service.NewPortfolioService(repository.NewPortfolioRepository(db), log)
	videoService := service.NewVideoService(repository.NewVideoRepository(db), log)
	inquiryService := service.NewInquiryService(dispatcher, "admin@example.com", log)

	leadHandler := handler.NewLeadHandler(leadService, log)
	dashboardHandler := handler.NewDashboardHandler(leadService, log)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService, log)
	videoHandler := handler.NewVideoHandler(videoService, log)
	inquiryHandler := handler.NewInquiryHandler(inquiryService, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/clients", leadHandler.CreateLead)
		r.Get("/clients", leadHandler.ListLeads)
		r.Get("/clients/{id}", leadHandler.GetLead)
		r.Patch("/clients/{id}", leadHandler.UpdateLead)
		r.Delete("/clients/{id}", leadHandler.DeleteLead)
		r.Get("/stats", dashboardHandler.GetStats)
		r.Get("/portfolio", portfolioHandler.ListProjects)
		r.Post("/portfolio", portfolioHandler.CreateProject)
		r.Get("/portfolio/public", portfolioHandler.ListPublicProjects)
		r.Get("/portfolio/{id}", portfolioHandler.GetProject)
		r.Patch("/portfolio/{id}", portfolioHandler.UpdateProject)
		r.Delete("/portfolio/{id}", portfolioHandler.DeleteProject)
		r.Get("/youtube-videos", videoHandler.ListVideos)
		r.Post("/youtube-videos/import", videoHandler.ImportVideos)
		r.Get("/youtube-videos/public", videoHandler.ListPublicVideos)
		r.Patch("/youtube-videos/{id}", videoHandler.UpdateVideo)
		r.Post("/leads", inquiryHandler.NotifyLead)
		r.Post("/contact", inquiryHandler.NotifyContact)
	})

	return &testEnv{db: db, sender: sender, router: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validLeadPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Alice Example",
		"email":        "alice@example.com",
		"phone":        "555-0100",
		"company":      "Acme",
		"projectType":  "E-commerce",
		"budgetRange":  "$1,000 - $5,000",
		"timeline":     "1 month",
		"features":     []string{"Responsive Design", "Payment Processing"},
		"requirements": "ERP integration",
	}
}
