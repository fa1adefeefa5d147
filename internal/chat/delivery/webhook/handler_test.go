package webhook

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"multi-tenant-bot-relay/internal/bot"
	"multi-tenant-bot-relay/internal/chat"
	"multi-tenant-bot-relay/internal/model"
	pkgLog "multi-tenant-bot-relay/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockBotUC struct {
	bots map[string]model.BotConfig
}

func (m *mockBotUC) Register(ctx context.Context, input bot.RegisterInput) (bot.RegisterOutput, error) {
	return bot.RegisterOutput{}, nil
}
func (m *mockBotUC) Get(ctx context.Context, id string) (model.BotConfig, error) {
	cfg, ok := m.bots[id]
	if !ok {
		return model.BotConfig{}, bot.ErrNotFound
	}
	return cfg, nil
}
func (m *mockBotUC) List(ctx context.Context) ([]model.BotConfig, error) { return nil, nil }
func (m *mockBotUC) UpdatePrompt(ctx context.Context, id, prompt string) error {
	return nil
}
func (m *mockBotUC) Remove(ctx context.Context, id string) error { return nil }

type chatCall struct {
	kind   model.EventKind
	userID string
	text   string
}

type mockChatUC struct {
	mu       sync.Mutex
	calls    []chatCall
	textErrs map[string]error // text -> error to return
}

func (m *mockChatUC) record(call chatCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockChatUC) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockChatUC) HandleTextMessage(ctx context.Context, cfg model.BotConfig, userID, replyToken, text string) error {
	m.record(chatCall{kind: model.KindTextMessage, userID: userID, text: text})
	if m.textErrs != nil {
		return m.textErrs[text]
	}
	return nil
}
func (m *mockChatUC) HandleAudioMessage(ctx context.Context, cfg model.BotConfig, userID, replyToken, messageID string) error {
	m.record(chatCall{kind: model.KindAudioMessage, userID: userID, text: messageID})
	return nil
}
func (m *mockChatUC) HandleFollow(ctx context.Context, cfg model.BotConfig, userID, replyToken string) error {
	m.record(chatCall{kind: model.KindFollow, userID: userID})
	return nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

const testSecret = "secret123"

func newTestRouter(chatUC *mockChatUC) *gin.Engine {
	gin.SetMode(gin.TestMode)

	botUC := &mockBotUC{bots: map[string]model.BotConfig{
		"english_tutor": {
			ID:            "english_tutor",
			Name:          "English Tutor",
			SkillType:     "language",
			AccessToken:   "token-123",
			ChannelSecret: testSecret,
		},
	}}

	h := NewHandler(botUC, chatUC, 0, pkgLog.NewNop())
	engine := gin.New()
	engine.POST("/webhook/:tenantID", h.HandleWebhook)
	engine.GET("/webhook/:tenantID", h.HandleProbe)
	return engine
}

func postWebhook(engine *gin.Engine, tenantID string, body []byte, signature string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/webhook/"+tenantID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", signature)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForCalls(t *testing.T, m *mockChatUC, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if m.callCount() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d chat calls, got %d", want, m.callCount())
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_UnknownTenant(t *testing.T) {
	engine := newTestRouter(&mockChatUC{})
	body := []byte(`{"events":[]}`)

	w := postWebhook(engine, "nope", body, sign(body, testSecret))
	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	chatUC := &mockChatUC{}
	engine := newTestRouter(chatUC)
	body := []byte(`{"events":[{"type":"message","replyToken":"rt","source":{"userId":"u1"},"message":{"type":"text","text":"hi"}}]}`)

	w := postWebhook(engine, "english_tutor", body, sign(body, "wrong-secret"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}

	time.Sleep(50 * time.Millisecond)
	if chatUC.callCount() != 0 {
		t.Error("events processed despite bad signature")
	}
}

func TestHandleWebhook_BadBody(t *testing.T) {
	engine := newTestRouter(&mockChatUC{})
	body := []byte(`{not json`)

	w := postWebhook(engine, "english_tutor", body, sign(body, testSecret))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}

func TestHandleWebhook_DispatchesEvents(t *testing.T) {
	chatUC := &mockChatUC{}
	engine := newTestRouter(chatUC)
	body := []byte(`{"events":[
		{"type":"message","replyToken":"rt1","source":{"userId":"u1"},"message":{"type":"text","text":"hello"}},
		{"type":"message","replyToken":"rt2","source":{"userId":"u2"},"message":{"type":"audio","id":"m-77"}},
		{"type":"follow","replyToken":"rt3","source":{"userId":"u3"}},
		{"type":"unfollow","source":{"userId":"u4"}}
	]}`)

	w := postWebhook(engine, "english_tutor", body, sign(body, testSecret))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != `{"success":true}` {
		t.Errorf("body %q", got)
	}

	// Three dispatchable events; the unfollow is ignored.
	waitForCalls(t, chatUC, 3)

	chatUC.mu.Lock()
	defer chatUC.mu.Unlock()
	if chatUC.calls[0].kind != model.KindTextMessage || chatUC.calls[0].text != "hello" {
		t.Errorf("call 0 = %+v", chatUC.calls[0])
	}
	if chatUC.calls[1].kind != model.KindAudioMessage || chatUC.calls[1].text != "m-77" {
		t.Errorf("call 1 = %+v", chatUC.calls[1])
	}
	if chatUC.calls[2].kind != model.KindFollow || chatUC.calls[2].userID != "u3" {
		t.Errorf("call 2 = %+v", chatUC.calls[2])
	}
}

func TestHandleWebhook_PerEventIsolation(t *testing.T) {
	chatUC := &mockChatUC{textErrs: map[string]error{
		"first": errors.New("boom"),
	}}
	engine := newTestRouter(chatUC)
	body := []byte(`{"events":[
		{"type":"message","replyToken":"rt1","source":{"userId":"u1"},"message":{"type":"text","text":"first"}},
		{"type":"message","replyToken":"rt2","source":{"userId":"u1"},"message":{"type":"text","text":"second"}}
	]}`)

	w := postWebhook(engine, "english_tutor", body, sign(body, testSecret))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200 despite failing event", w.Code)
	}

	// The failing first event must not abort the second.
	waitForCalls(t, chatUC, 2)
}

func TestHandleWebhook_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	botUC := &mockBotUC{bots: map[string]model.BotConfig{
		"english_tutor": {ID: "english_tutor", ChannelSecret: testSecret},
	}}
	h := NewHandler(botUC, &mockChatUC{}, 10, pkgLog.NewNop()) // burst 1
	engine := gin.New()
	engine.POST("/webhook/:tenantID", h.HandleWebhook)

	body := []byte(`{"events":[]}`)
	sig := sign(body, testSecret)

	got429 := false
	for i := 0; i < 10; i++ {
		if postWebhook(engine, "english_tutor", body, sig).Code == http.StatusTooManyRequests {
			got429 = true
			break
		}
	}
	if !got429 {
		t.Error("rate limit never kicked in")
	}
}

func TestHandleProbe(t *testing.T) {
	engine := newTestRouter(&mockChatUC{})

	req, _ := http.NewRequest(http.MethodGet, "/webhook/english_tutor", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	resBody := w.Body.String()
	for _, want := range []string{"english_tutor", "English Tutor", "language"} {
		if !bytes.Contains([]byte(resBody), []byte(want)) {
			t.Errorf("probe body missing %q: %s", want, resBody)
		}
	}
	if bytes.Contains([]byte(resBody), []byte(testSecret)) {
		t.Error("probe leaked the signing secret")
	}

	req, _ = http.NewRequest(http.MethodGet, "/webhook/unknown", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown tenant probe: status %d, want 404", w.Code)
	}
}

// Interface conformance.
var _ chat.UseCase = (*mockChatUC)(nil)
var _ bot.UseCase = (*mockBotUC)(nil)
