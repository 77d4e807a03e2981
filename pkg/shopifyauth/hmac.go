package shopifyauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// CanonicalMessage builds the payload Shopify signs for an OAuth callback:
// every query parameter except hmac and signature, keys sorted
// lexicographically, joined as key=value pairs with &.
func CanonicalMessage(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hmac" || k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range values[k] {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, "&")
}

// ComputeHMAC returns the lowercase hex HMAC-SHA256 digest of message keyed by secret.
func ComputeHMAC(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyCallbackHMAC verifies the hmac parameter of an OAuth callback query string.
// The comparison is constant-time; a length mismatch is an ordinary mismatch.
func VerifyCallbackHMAC(values url.Values, secret string) bool {
	given := values.Get("hmac")
	if given == "" || secret == "" {
		return false
	}
	expected := ComputeHMAC(CanonicalMessage(values), secret)
	return hmac.Equal([]byte(expected), []byte(given))
}

// VerifyWebhookHMAC verifies the X-Shopify-Hmac-Sha256 header of a webhook
// delivery: base64 HMAC-SHA256 over the raw request body.
func VerifyWebhookHMAC(body []byte, header, secret string) bool {
	if header == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}
