package shopifyauth

import (
	"fmt"
	"html"
)

// Delay before the popup closes itself, in milliseconds.
const autoCloseDelayMillis = 3000

// SuccessPage renders the confirmation document shown after an install
// completes. Shop and scope come from the platform and are escaped before
// interpolation.
func SuccessPage(shop, scope string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>App Installed</title></head>
<body style="font-family:system-ui;text-align:center;margin-top:80px">
<h2>App Installed</h2>
<p>Shop <strong>%s</strong> has been connected with scope <strong>%s</strong>.</p>
<p>You can close this window.</p>
<script>setTimeout(function(){window.close()},%d)</script>
</body>
</html>`, html.EscapeString(shop), html.EscapeString(scope), autoCloseDelayMillis)
}

// ErrorPage renders a failure document containing only the error's message
// text. Credentials must never reach this function.
func ErrorPage(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Installation Failed</title></head>
<body style="font-family:system-ui;text-align:center;margin-top:80px">
<h2>Installation Failed</h2>
<p>%s</p>
</body>
</html>`, html.EscapeString(message))
}
