package server

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/adherence"
	"github.com/healthtrack-labs/healthtrack/internal/async"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/export"
	"github.com/healthtrack-labs/healthtrack/internal/pipeline"
	"github.com/healthtrack-labs/healthtrack/internal/repository"
	"github.com/healthtrack-labs/healthtrack/internal/whatsapp"
)

// ChatTransport is the messaging surface the webhook handlers use: reply
// to senders and pull inbound attachments.
type ChatTransport interface {
	SendText(ctx context.Context, to, body string) error
	DownloadMedia(ctx context.Context, mediaID string) ([]byte, string, error)
}

// TextClassifier decides what kind of medical document a free-text
// message resembles, so the bot can ask for a proper copy.
type TextClassifier interface {
	ClassifyText(ctx context.Context, text string) (constants.DocumentKind, error)
}

// Server owns the HTTP surface: web upload, webhook, reminder trigger
// and the read APIs behind the dashboards.
type Server struct {
	logger        *slog.Logger
	cfg           *common.Config
	processor     *pipeline.Processor
	queue         *async.DocumentQueue
	engine        *adherence.Engine
	chat          ChatTransport
	classifier    TextClassifier
	seen          whatsapp.SeenStore
	results       repository.TestResultRepository
	imaging       repository.ImagingResultRepository
	prescriptions repository.PrescriptionRepository
	adherenceRepo repository.AdherenceRepository
	exporter      *export.Service
}

type Deps struct {
	Config        *common.Config
	Processor     *pipeline.Processor
	Queue         *async.DocumentQueue
	Engine        *adherence.Engine
	Chat          ChatTransport
	Classifier    TextClassifier
	Seen          whatsapp.SeenStore
	Results       repository.TestResultRepository
	Imaging       repository.ImagingResultRepository
	Prescriptions repository.PrescriptionRepository
	Adherence     repository.AdherenceRepository
	Exporter      *export.Service
}

func New(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:        logger,
		cfg:           deps.Config,
		processor:     deps.Processor,
		queue:         deps.Queue,
		engine:        deps.Engine,
		chat:          deps.Chat,
		classifier:    deps.Classifier,
		seen:          deps.Seen,
		results:       deps.Results,
		imaging:       deps.Imaging,
		prescriptions: deps.Prescriptions,
		adherenceRepo: deps.Adherence,
		exporter:      deps.Exporter,
	}
}

// Router builds the gin engine with every route attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	r.GET("/webhook/whatsapp", s.handleWebhookVerify)
	r.POST("/webhook/whatsapp", s.handleWebhookEvent)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/documents", s.handleUpload)
		v1.POST("/reminders/dispatch", s.handleDispatchReminders)
		v1.GET("/results", s.handleListResults)
		v1.GET("/results/export", s.handleExportResults)
		v1.GET("/imaging", s.handleListImaging)
		v1.GET("/prescriptions", s.handleListPrescriptions)
		v1.GET("/adherence/:prescriptionID", s.handleAdherenceCalendar)
		v1.POST("/adherence", s.handleRecordAdherence)
	}
	return r
}
