package audio

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	pkgLog "multi-tenant-bot-relay/pkg/log"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore(0)

	id := s.Put([]byte("mp3-bytes"))
	if id == "" {
		t.Fatal("empty blob id")
	}

	data, ok := s.Get(id)
	if !ok || !bytes.Equal(data, []byte("mp3-bytes")) {
		t.Errorf("Get = %q, %v", data, ok)
	}

	if _, ok := s.Get("unknown"); ok {
		t.Error("unknown id should miss")
	}
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(50 * time.Millisecond)

	id := s.Put([]byte("short-lived"))
	time.Sleep(120 * time.Millisecond)

	if _, ok := s.Get(id); ok {
		t.Error("blob retrievable past its TTL")
	}
}

func newAudioRouter(s *Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/audio/:blobID", NewHandler(s, pkgLog.NewNop()).Serve)
	return engine
}

func TestHandler_ServeWithAndWithoutSuffix(t *testing.T) {
	s := NewStore(0)
	id := s.Put([]byte("clip"))
	engine := newAudioRouter(s)

	for _, path := range []string{"/audio/" + id, "/audio/" + id + ".mp3"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s: status %d, want 200", path, w.Code)
			continue
		}
		if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
			t.Errorf("GET %s: content type %q", path, ct)
		}
		if w.Body.String() != "clip" {
			t.Errorf("GET %s: body %q", path, w.Body.String())
		}
	}
}

func TestHandler_NotFound(t *testing.T) {
	engine := newAudioRouter(NewStore(0))

	req, _ := http.NewRequest(http.MethodGet, "/audio/nope.mp3", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}
