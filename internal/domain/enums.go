package domain

// OrderSource identifies the shape of an inbound order payload
type OrderSource string

const (
	// OrderSourceGenericCart is a flat cart payload with cart_items
	OrderSourceGenericCart OrderSource = "GENERIC_CART"
	// OrderSourcePlatformOrder is a Shopify-style order with line_items and nested addresses
	OrderSourcePlatformOrder OrderSource = "PLATFORM_ORDER"
)

// IsValid checks if the order source is known
func (s OrderSource) IsValid() bool {
	switch s {
	case OrderSourceGenericCart, OrderSourcePlatformOrder:
		return true
	default:
		return false
	}
}

// StoreTag identifies the storefront an order belongs to
type StoreTag string

const (
	StoreTagEQ StoreTag = "EQ"
	StoreTagBZ StoreTag = "BZ"
	StoreTagGZ StoreTag = "GZ"
	StoreTagSH StoreTag = "SH"

	DefaultStoreTag = StoreTagEQ
)
