package shopifyauth

import (
	"strings"
	"testing"
)

func TestSuccessPage(t *testing.T) {
	page := SuccessPage("a.myshopify.com", "read_orders")

	if !strings.Contains(page, "a.myshopify.com") {
		t.Error("SuccessPage() missing shop name")
	}
	if !strings.Contains(page, "read_orders") {
		t.Error("SuccessPage() missing scope")
	}
	if !strings.Contains(page, "window.close()") {
		t.Error("SuccessPage() missing auto-close script")
	}
	if !strings.Contains(page, "setTimeout") {
		t.Error("SuccessPage() auto-close is not delayed")
	}
}

func TestSuccessPageEscapesValues(t *testing.T) {
	page := SuccessPage(`<script>alert("shop")</script>`, `read_orders&write_orders`)

	if strings.Contains(page, `<script>alert`) {
		t.Error("SuccessPage() interpolated shop without escaping")
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Error("SuccessPage() did not escape markup in shop")
	}
	if !strings.Contains(page, "read_orders&amp;write_orders") {
		t.Error("SuccessPage() did not escape ampersand in scope")
	}
}

func TestErrorPage(t *testing.T) {
	page := ErrorPage("token exchange failed: 502 Bad Gateway")

	if !strings.Contains(page, "token exchange failed") {
		t.Error("ErrorPage() missing error message")
	}
	if !strings.Contains(page, "Installation Failed") {
		t.Error("ErrorPage() missing heading")
	}

	escaped := ErrorPage(`<img src=x onerror=alert(1)>`)
	if strings.Contains(escaped, "<img") {
		t.Error("ErrorPage() interpolated message without escaping")
	}
}
