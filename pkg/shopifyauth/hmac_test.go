package shopifyauth

import (
	"net/url"
	"testing"
)

func TestCanonicalMessage(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		expected string
	}{
		{
			name: "Sorted key=value pairs",
			values: url.Values{
				"shop":  {"a.myshopify.com"},
				"code":  {"xyz"},
				"state": {"abc"},
			},
			expected: "code=xyz&shop=a.myshopify.com&state=abc",
		},
		{
			name: "hmac and signature excluded",
			values: url.Values{
				"shop":      {"a.myshopify.com"},
				"code":      {"xyz"},
				"state":     {"abc"},
				"hmac":      {"deadbeef"},
				"signature": {"cafe"},
			},
			expected: "code=xyz&shop=a.myshopify.com&state=abc",
		},
		{
			name: "Extra parameters included",
			values: url.Values{
				"shop":      {"a.myshopify.com"},
				"code":      {"xyz"},
				"timestamp": {"1700000000"},
				"hmac":      {"deadbeef"},
			},
			expected: "code=xyz&shop=a.myshopify.com&timestamp=1700000000",
		},
		{
			name: "Repeated key keeps all values",
			values: url.Values{
				"ids":  {"1", "2"},
				"shop": {"a.myshopify.com"},
			},
			expected: "ids=1&ids=2&shop=a.myshopify.com",
		},
		{
			name:     "Empty query",
			values:   url.Values{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalMessage(tt.values)
			if got != tt.expected {
				t.Errorf("CanonicalMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestComputeHMAC(t *testing.T) {
	// Reference vector: HMAC-SHA256("code=xyz&shop=a.myshopify.com&state=abc", "hush")
	const message = "code=xyz&shop=a.myshopify.com&state=abc"
	const expected = "f92e5580d9ecdf0b327447e13effeee009b2e116ad6f99a54931dd424c225cd7"

	got := ComputeHMAC(message, "hush")
	if got != expected {
		t.Errorf("ComputeHMAC() = %s, want %s", got, expected)
	}

	// Deterministic across calls
	if again := ComputeHMAC(message, "hush"); again != got {
		t.Errorf("ComputeHMAC() not deterministic: %s != %s", again, got)
	}

	// Changing a single character of the message changes the digest
	changed := ComputeHMAC("code=xyz&shop=a.myshopify.com&state=abd", "hush")
	if changed == got {
		t.Error("ComputeHMAC() digest unchanged after message edit")
	}
	if changed != "3f8fc25a8b69cd2bba03eaf0e68a50c5249e0d292f7cba7d266aa5205df17d50" {
		t.Errorf("ComputeHMAC() = %s for edited message", changed)
	}
}

func TestVerifyCallbackHMAC(t *testing.T) {
	const secret = "hush"
	const valid = "f92e5580d9ecdf0b327447e13effeee009b2e116ad6f99a54931dd424c225cd7"

	base := func(hmacValue string) url.Values {
		return url.Values{
			"shop":  {"a.myshopify.com"},
			"code":  {"xyz"},
			"state": {"abc"},
			"hmac":  {hmacValue},
		}
	}

	tests := []struct {
		name     string
		values   url.Values
		secret   string
		expected bool
	}{
		{"Valid signature", base(valid), secret, true},
		{"Same-length near-match", base(valid[:63] + "8"), secret, false},
		{"Different length", base(valid[:20]), secret, false},
		{"Missing hmac parameter", url.Values{"shop": {"a.myshopify.com"}}, secret, false},
		{"Empty secret", base(valid), "", false},
		{"Wrong secret", base(valid), "other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyCallbackHMAC(tt.values, tt.secret); got != tt.expected {
				t.Errorf("VerifyCallbackHMAC() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVerifyWebhookHMAC(t *testing.T) {
	body := []byte(`{"id":1234}`)
	// HMAC-SHA256 of the body keyed by "hush", base64
	const header = "hqshSVej2gPnBo3UvyGMbZ8zuh79mY0OQ2EtG972/3Y="

	if !VerifyWebhookHMAC(body, header, "hush") {
		t.Error("VerifyWebhookHMAC() rejected a valid signature")
	}
	if VerifyWebhookHMAC([]byte(`{"id":1235}`), header, "hush") {
		t.Error("VerifyWebhookHMAC() accepted a tampered body")
	}
	if VerifyWebhookHMAC(body, "", "hush") {
		t.Error("VerifyWebhookHMAC() accepted an empty header")
	}
	if VerifyWebhookHMAC(body, header, "") {
		t.Error("VerifyWebhookHMAC() accepted an empty secret")
	}
}
