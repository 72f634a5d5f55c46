package service

import (
	"github.com/jafarshop/ordernotify/internal/domain"
)

// DetectSource classifies an inbound payload. A non-empty line_items array
// marks a platform order unless cart_items is also present, in which case
// the cart shape wins.
func DetectSource(data map[string]interface{}) domain.OrderSource {
	lineItems, ok := data["line_items"].([]interface{})
	if ok && len(lineItems) > 0 && !truthy(data["cart_items"]) {
		return domain.OrderSourcePlatformOrder
	}
	return domain.OrderSourceGenericCart
}
