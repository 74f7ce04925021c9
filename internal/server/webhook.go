package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/async"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/whatsapp"
)

// handleWebhookVerify answers the platform's subscription handshake:
// echo the challenge when the verify token matches, 403 otherwise.
func (s *Server) handleWebhookVerify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.cfg.WhatsApp.VerifyToken {
		s.logger.Info("webhook.verify.ok")
		c.String(http.StatusOK, challenge)
		return
	}
	s.logger.Warn("webhook.verify.rejected", "mode", mode)
	c.Status(http.StatusForbidden)
}

// handleWebhookEvent ingests one delivery. The platform redelivers
// anything not answered 200 quickly, so every path acknowledges; user
// visible failures go back over chat, never in the HTTP response.
func (s *Server) handleWebhookEvent(c *gin.Context) {
	var payload whatsapp.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		s.logger.Warn("webhook.event.bad_payload", "error", err)
		c.Status(http.StatusOK)
		return
	}

	msg, ok := payload.FirstMessage()
	if !ok {
		c.Status(http.StatusOK)
		return
	}
	if s.seen.SeenOrAdd(msg.ID) {
		s.logger.Info("webhook.event.duplicate", "message_id", msg.ID)
		c.Status(http.StatusOK)
		return
	}

	switch msg.Type {
	case "interactive":
		s.handleButtonReply(c, msg)
		return
	case "image":
		s.enqueueMedia(c, msg, msg.Image, "photo.jpg")
		return
	case "document":
		name := "document.pdf"
		if msg.Document != nil && msg.Document.Filename != "" {
			name = msg.Document.Filename
		}
		s.enqueueMedia(c, msg, msg.Document, name)
		return
	case "text":
		s.handleTextMessage(c, msg)
		return
	default:
		s.logger.Info("webhook.event.ignored", "message_id", msg.ID, "type", msg.Type)
		c.Status(http.StatusOK)
	}
}

func (s *Server) handleButtonReply(c *gin.Context, msg *whatsapp.Message) {
	defer c.Status(http.StatusOK)

	if msg.Interactive == nil || msg.Interactive.ButtonReply == nil {
		s.logger.Warn("webhook.reply.malformed", "message_id", msg.ID)
		return
	}

	ctx := c.Request.Context()
	reply, err := s.engine.HandleReply(ctx, msg.Interactive.ButtonReply.ID)
	if err != nil {
		s.logger.Error("webhook.reply.failed", "message_id", msg.ID, "error", err)
	}
	if sendErr := s.chat.SendText(ctx, msg.From, reply); sendErr != nil {
		s.logger.Error("webhook.reply.send_failed", "message_id", msg.ID, "error", sendErr)
	}
}

func (s *Server) enqueueMedia(c *gin.Context, msg *whatsapp.Message, media *whatsapp.Media, fallbackName string) {
	defer c.Status(http.StatusOK)

	if media == nil || media.ID == "" {
		s.logger.Warn("webhook.media.malformed", "message_id", msg.ID, "type", msg.Type)
		s.replyText(c, msg.From, common.UserMessage(common.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	data, mimeType, err := s.chat.DownloadMedia(ctx, media.ID)
	if err != nil {
		s.logger.Error("webhook.media.download_failed", "message_id", msg.ID, "media_id", media.ID, "error", err)
		s.replyText(c, msg.From, "I couldn't download that file. Please try sending it again.")
		return
	}
	if mimeType == "" {
		mimeType = media.MimeType
	}

	job := async.DocumentJob{
		MessageID:   msg.ID,
		PatientID:   s.cfg.Patient.ID,
		Filename:    fallbackName,
		MIMEType:    mimeType,
		Data:        data,
		ReplyTo:     msg.From,
		SubmittedAt: time.Now(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("webhook.media.enqueue_failed", "message_id", msg.ID, "error", err)
		s.replyText(c, msg.From, "I couldn't take that document right now. Please try again later.")
		return
	}
	s.replyText(c, msg.From, "Got it. I'm reading your document and will confirm once it's saved.")
}

// handleTextMessage can't run the pipeline (no pages), but classifying
// the text lets the bot ask for a proper copy of whatever was pasted.
func (s *Server) handleTextMessage(c *gin.Context, msg *whatsapp.Message) {
	defer c.Status(http.StatusOK)

	if msg.Text == nil || msg.Text.Body == "" {
		return
	}

	ctx := c.Request.Context()
	reply := "Hi! Send me a photo or PDF of a test report, imaging result or prescription and I'll save it for you."
	if s.classifier != nil {
		if kind, err := s.classifier.ClassifyText(ctx, msg.Text.Body); err == nil {
			reply = fmt.Sprintf("That looks like a %s. Please send it as a photo or PDF so I can save the details.",
				kindLabel(kind))
		}
	}
	s.replyText(c, msg.From, reply)
}

func kindLabel(kind constants.DocumentKind) string {
	switch kind {
	case constants.KindHealthRecord:
		return "test report"
	case constants.KindImagingResult:
		return "imaging report"
	case constants.KindPrescription:
		return "prescription"
	}
	return "medical document"
}

func (s *Server) replyText(c *gin.Context, to, body string) {
	if err := s.chat.SendText(c.Request.Context(), to, body); err != nil {
		s.logger.Error("webhook.send_failed", "to", to, "error", err)
	}
}
