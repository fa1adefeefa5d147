package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "secret123"
	body := []byte(`{"events":[{"type":"message","message":{"type":"text","text":"hi"}}]}`)

	if !VerifySignature(body, sign(body, secret), secret) {
		t.Error("correct signature rejected")
	}

	cases := []struct {
		name string
		body []byte
		sig  string
	}{
		{"wrong secret", body, sign(body, "other-secret")},
		{"tampered body", []byte(`{"events":[]}`), sign(body, secret)},
		// Byte-for-byte: a whitespace-only difference must fail.
		{"whitespace difference", append([]byte(" "), body...), sign(body, secret)},
		{"hex instead of base64", body, "deadbeef"},
		{"empty signature", body, ""},
		{"garbage", body, "not-a-signature"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifySignature(tc.body, tc.sig, secret) {
				t.Error("invalid signature accepted")
			}
		})
	}
}

func TestVerifySignature_EmptySecret(t *testing.T) {
	body := []byte(`{}`)
	if VerifySignature(body, sign(body, ""), "") {
		t.Error("empty secret must never verify")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(60) // 1/s, burst 6

	allowed := 0
	for i := 0; i < 20; i++ {
		if rl.Allow("tenant-a") == nil {
			allowed++
		}
	}
	if allowed >= 20 {
		t.Error("rate limiter never limited")
	}
	if allowed == 0 {
		t.Error("rate limiter rejected the first request")
	}

	// Separate tenants get separate buckets.
	if err := rl.Allow("tenant-b"); err != nil {
		t.Errorf("fresh tenant limited: %v", err)
	}
}
