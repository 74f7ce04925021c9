package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/whatsapp"
)

type mockChat struct {
	texts    []string
	media    map[string][]byte
	mimeType string
}

func (m *mockChat) SendText(_ context.Context, _, body string) error {
	m.texts = append(m.texts, body)
	return nil
}

func (m *mockChat) DownloadMedia(_ context.Context, mediaID string) ([]byte, string, error) {
	data, ok := m.media[mediaID]
	if !ok {
		return nil, "", fmt.Errorf("media %s: %w", mediaID, common.ErrNotFound)
	}
	return data, m.mimeType, nil
}

type mockClassifier struct {
	kind constants.DocumentKind
	err  error
}

func (m *mockClassifier) ClassifyText(context.Context, string) (constants.DocumentKind, error) {
	return m.kind, m.err
}

func newTestServer(chat *mockChat, classifier TextClassifier) *Server {
	gin.SetMode(gin.TestMode)
	cfg := &common.Config{}
	cfg.WhatsApp.VerifyToken = "expected-token"
	return New(Deps{
		Config:     cfg,
		Chat:       chat,
		Classifier: classifier,
		Seen:       whatsapp.NewRecentSet(16),
	}, nil)
}

func TestWebhookVerifyHandshake(t *testing.T) {
	srv := newTestServer(&mockChat{}, nil)
	router := srv.Router()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "token matches",
			query:      "hub.mode=subscribe&hub.verify_token=expected-token&hub.challenge=12345",
			wantStatus: http.StatusOK,
			wantBody:   "12345",
		},
		{
			name:       "token mismatch",
			query:      "hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong mode",
			query:      "hub.mode=unsubscribe&hub.verify_token=expected-token&hub.challenge=12345",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/webhook/whatsapp?"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func textEventPayload(messageID, body string) []byte {
	return []byte(fmt.Sprintf(`{
		"object": "whatsapp_business_account",
		"entry": [{"id": "e1", "changes": [{"field": "messages", "value": {
			"messaging_product": "whatsapp",
			"messages": [{"id": %q, "from": "911234567890", "type": "text", "text": {"body": %q}}]
		}}]}]
	}`, messageID, body))
}

func postEvent(t *testing.T, router *gin.Engine, payload []byte) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w.Code
}

func TestWebhookTextMessageGetsGuidance(t *testing.T) {
	chat := &mockChat{}
	srv := newTestServer(chat, nil)
	router := srv.Router()

	code := postEvent(t, router, textEventPayload("wamid.1", "hello"))
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, chat.texts, 1)
	assert.Contains(t, chat.texts[0], "photo or PDF")
}

func TestWebhookTextMessageClassified(t *testing.T) {
	chat := &mockChat{}
	srv := newTestServer(chat, &mockClassifier{kind: constants.KindPrescription})
	router := srv.Router()

	code := postEvent(t, router, textEventPayload("wamid.2", "Tab Amoxicillin 500mg twice daily"))
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, chat.texts, 1)
	assert.Contains(t, chat.texts[0], "prescription")
}

func TestWebhookDuplicateDeliverySuppressed(t *testing.T) {
	chat := &mockChat{}
	srv := newTestServer(chat, nil)
	router := srv.Router()

	payload := textEventPayload("wamid.dup", "hello")
	assert.Equal(t, http.StatusOK, postEvent(t, router, payload))
	assert.Equal(t, http.StatusOK, postEvent(t, router, payload))

	// Second delivery was acknowledged but not handled again.
	assert.Len(t, chat.texts, 1)
}

func TestWebhookMediaMessageWithoutAttachmentAcknowledged(t *testing.T) {
	chat := &mockChat{}
	srv := newTestServer(chat, nil)
	router := srv.Router()

	// Declared media type but no media object attached.
	for i, raw := range []string{
		`{"id": "wamid.img", "from": "911234567890", "type": "image"}`,
		`{"id": "wamid.doc", "from": "911234567890", "type": "document"}`,
		`{"id": "wamid.imgid", "from": "911234567890", "type": "image", "image": {}}`,
	} {
		payload := []byte(`{
			"object": "whatsapp_business_account",
			"entry": [{"id": "e1", "changes": [{"field": "messages", "value": {
				"messaging_product": "whatsapp",
				"messages": [` + raw + `]
			}}]}]
		}`)
		assert.Equal(t, http.StatusOK, postEvent(t, router, payload))
		require.Len(t, chat.texts, i+1)
	}
}

func TestWebhookMalformedPayloadStillAcknowledged(t *testing.T) {
	srv := newTestServer(&mockChat{}, nil)
	router := srv.Router()

	assert.Equal(t, http.StatusOK, postEvent(t, router, []byte("not json")))
	assert.Equal(t, http.StatusOK, postEvent(t, router, []byte(`{"object":"whatsapp_business_account","entry":[]}`)))
}
