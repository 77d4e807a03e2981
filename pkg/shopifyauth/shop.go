package shopifyauth

import "regexp"

// Shop domains are <store>.myshopify.com, where the store name is
// alphanumeric with interior hyphens.
var shopDomainRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*\.myshopify\.com$`)

// ValidShopDomain reports whether shop is a well-formed myshopify.com hostname.
func ValidShopDomain(shop string) bool {
	return shopDomainRegex.MatchString(shop)
}
