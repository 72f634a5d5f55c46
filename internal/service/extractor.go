package service

import (
	"strings"

	"github.com/samber/lo"

	"github.com/jafarshop/ordernotify/internal/domain"
)

// Placeholders used when the payload does not carry a value
const (
	placeholderCustomer        = "عميلنا العزيز"
	placeholderProduct         = "منتج"
	placeholderAddress         = "غير متوفر"
	placeholderNationalAddress = "غير متوفر (يرجى تزويدنا بالعنوان الوطني)"
	placeholderFree            = "مجاني"
	placeholderNotSpecified    = "غير محدد"
)

// ExtractOrder maps an inbound payload onto a NormalizedOrder. It never
// fails: missing data degrades to placeholders. An unknown source is
// detected from the payload.
func ExtractOrder(data map[string]interface{}, source domain.OrderSource, cfg domain.StoreConfig) domain.NormalizedOrder {
	if !source.IsValid() {
		source = DetectSource(data)
	}
	if source == domain.OrderSourcePlatformOrder {
		return extractPlatformOrder(data, cfg)
	}
	return extractGenericCart(data, cfg)
}

func extractGenericCart(data map[string]interface{}, cfg domain.StoreConfig) domain.NormalizedOrder {
	item := firstObject(data, "cart_items")

	return domain.NormalizedOrder{
		Source: domain.OrderSourceGenericCart,
		CustomerName: firstTruthy(data,
			field("full_name"),
			field("name"),
			field("customer_name"),
			literal(placeholderCustomer),
		),
		CustomerPhone: firstTruthy(data,
			field("phone"),
			field("phone_alt"),
			field("customer_phone"),
			literal(""),
		),
		OrderID: firstTruthy(data,
			field("short_id"),
			field("order_id"),
			field("id"),
			literal(""),
		),
		Country: country(data, cfg,
			field("country"),
			field("shipping_country"),
		),
		ProductName: firstTruthy(data, in(item, "product", "name"), literal(placeholderProduct)),
		Quantity:    firstDefined(data, in(item, "quantity"), literal(1)),
		PriceRaw: firstDefined(data,
			in(item, "price"),
			field("total_cost"),
			field("cost"),
			literal(0),
		),
		ShippingRaw: firstDefined(data,
			field("shipping_cost"),
			field("shipping_fee"),
			field("shipping_price"),
			field("delivery_cost"),
			field("shipping"),
			field("delivery"),
			literal(0),
		),
		DetailedAddress: firstTruthy(data,
			field("address"),
			field("full_address"),
			field("shipping_address"),
			field("address_text"),
			field("city"),
			literal(placeholderAddress),
		),
		NationalAddressRaw: firstTruthy(data,
			field("national_address"),
			field("short_address"),
			field("shortAddress"),
			field("address_short"),
			literal(""),
		),
	}
}

func extractPlatformOrder(data map[string]interface{}, cfg domain.StoreConfig) domain.NormalizedOrder {
	item := firstObject(data, "line_items")
	shippingLine := firstObject(data, "shipping_lines")

	return domain.NormalizedOrder{
		Source: domain.OrderSourcePlatformOrder,
		CustomerName: firstTruthy(data,
			shippingFullName,
			field("shipping_address", "name"),
			field("billing_address", "name"),
			literal(placeholderCustomer),
		),
		CustomerPhone: firstTruthy(data,
			field("shipping_address", "phone"),
			field("phone"),
			field("customer", "phone"),
			field("customer_phone"),
			literal(""),
		),
		OrderID: firstTruthy(data,
			field("name"),
			field("order_number"),
			field("id"),
			literal(""),
		),
		Country: country(data, cfg,
			field("shipping_address", "country_code"),
			field("shipping_address", "country"),
		),
		ProductName: firstTruthy(data, in(item, "title"), literal(placeholderProduct)),
		Quantity:    firstDefined(data, in(item, "quantity"), literal(1)),
		PriceRaw: firstDefined(data,
			in(item, "price"),
			field("total_price"),
			literal(0),
		),
		ShippingRaw: firstDefined(data,
			in(shippingLine, "price"),
			field("total_shipping_price_set", "shop_money", "amount"),
			literal(0),
		),
		DetailedAddress:    platformAddress(data),
		NationalAddressRaw: "",
	}
}

// shippingFullName joins the shipping first and last name with one space
func shippingFullName(data map[string]interface{}) interface{} {
	parts := lo.Filter([]string{
		strings.TrimSpace(toText(firstTruthy(data, field("shipping_address", "first_name")))),
		strings.TrimSpace(toText(firstTruthy(data, field("shipping_address", "last_name")))),
	}, func(s string, _ int) bool { return s != "" })
	return strings.Join(parts, " ")
}

func platformAddress(data map[string]interface{}) string {
	parts := lo.FilterMap([]string{"address1", "address2", "city", "province", "zip"}, func(key string, _ int) (string, bool) {
		part := strings.TrimSpace(toText(firstTruthy(data, field("shipping_address", key))))
		return part, part != ""
	})
	if len(parts) == 0 {
		return placeholderAddress
	}
	return strings.Join(parts, " - ")
}

// country resolves the country from the payload chain, then the store default
func country(data map[string]interface{}, cfg domain.StoreConfig, chain ...accessor) string {
	chain = append(chain, literal(cfg.DefaultCountry))
	return toText(firstTruthy(data, chain...))
}
