package service

import (
	"fmt"
	"strings"

	"github.com/jafarshop/ordernotify/internal/domain"
)

// contactCountryAuto lets the messaging platform infer the contact country from the number
const contactCountryAuto = "auto"

// BuildPayload assembles the template message. Every template field passes
// through SafeText.
func BuildPayload(
	order domain.NormalizedOrder,
	tag domain.StoreTag,
	cfg domain.StoreConfig,
	phoneDigits string,
	pricing Pricing,
) domain.OutboundPayload {
	customerName := SafeText(order.CustomerName)

	return domain.OutboundPayload{
		PhoneNumber:      phoneDigits,
		TemplateName:     cfg.Template,
		TemplateLanguage: cfg.Lang,
		Field1:           customerName,
		Field2:           SafeText(orderReference(order.OrderID, tag)),
		Field3:           SafeText(order.ProductName),
		Field4:           SafeText(order.Quantity),
		Field5:           SafeText(pricing.PriceText),
		Field6:           SafeText(pricing.ShippingText),
		Field7:           SafeText(pricing.TotalText),
		Field8:           SafeText(order.DetailedAddress),
		Field9:           SafeText(nationalAddress(order.NationalAddressRaw)),
		Contact: domain.Contact{
			FirstName:   customerName,
			PhoneNumber: phoneDigits,
			Country:     contactCountryAuto,
		},
	}
}

// orderReference is "{orderId} ({TAG})" unless the store has a fixed reference
func orderReference(orderID interface{}, tag domain.StoreTag) string {
	if ref, ok := orderRefOverrides[tag]; ok {
		return ref
	}
	return fmt.Sprintf("%s (%s)", toText(orderID), tag)
}

func nationalAddress(raw interface{}) string {
	if addr := strings.TrimSpace(toText(raw)); addr != "" {
		return addr
	}
	return placeholderNationalAddress
}
