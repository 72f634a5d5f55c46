package service

import (
	"strings"

	"github.com/jafarshop/ordernotify/internal/domain"
)

const (
	orderConfirmationTemplate = "ordar_confirmation"
	arabicEgyptLang           = "ar_EG"
	saudiRiyalLabel           = "ريال سعودي"
	defaultCountry            = "KSA"
)

// storeConfigs is read-only after init
var storeConfigs = map[domain.StoreTag]domain.StoreConfig{
	domain.StoreTagEQ: {
		Template:       orderConfirmationTemplate,
		Lang:           arabicEgyptLang,
		CurrencyLabel:  saudiRiyalLabel,
		DefaultCountry: defaultCountry,
	},
	domain.StoreTagBZ: {
		Template:       orderConfirmationTemplate,
		Lang:           arabicEgyptLang,
		CurrencyLabel:  saudiRiyalLabel,
		DefaultCountry: defaultCountry,
	},
	domain.StoreTagGZ: {
		Template:       orderConfirmationTemplate,
		Lang:           arabicEgyptLang,
		CurrencyLabel:  saudiRiyalLabel,
		DefaultCountry: defaultCountry,
	},
	domain.StoreTagSH: {
		Template:       orderConfirmationTemplate,
		Lang:           arabicEgyptLang,
		CurrencyLabel:  saudiRiyalLabel,
		DefaultCountry: defaultCountry,
	},
}

// orderRefOverrides replaces the "{orderId} ({TAG})" order reference with a
// fixed literal for specific stores.
var orderRefOverrides = map[domain.StoreTag]string{
	domain.StoreTagSH: "SH",
}

// ResolveStoreTag picks the store tag from the query parameter, then the
// body's storeTag, then the body's tag, defaulting to EQ. The result is
// uppercased but not checked against the known stores.
func ResolveStoreTag(queryTag string, data map[string]interface{}) domain.StoreTag {
	raw := firstTruthy(data,
		literal(queryTag),
		field("storeTag"),
		field("tag"),
		literal(string(domain.DefaultStoreTag)),
	)
	return domain.StoreTag(strings.ToUpper(toText(raw)))
}

// StoreConfigFor returns the config for tag, falling back to the EQ store
func StoreConfigFor(tag domain.StoreTag) domain.StoreConfig {
	if cfg, ok := storeConfigs[tag]; ok {
		return cfg
	}
	return storeConfigs[domain.DefaultStoreTag]
}
