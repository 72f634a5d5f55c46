package domain

// StoreConfig selects the message template and locale for a storefront
type StoreConfig struct {
	Template       string
	Lang           string
	CurrencyLabel  string
	DefaultCountry string
}

// NormalizedOrder is the source-independent view of an inbound order.
// Raw values keep their decoded JSON form so numeric zero survives.
type NormalizedOrder struct {
	Source             OrderSource
	CustomerName       interface{}
	CustomerPhone      interface{}
	OrderID            interface{}
	Country            string
	ProductName        interface{}
	Quantity           interface{}
	PriceRaw           interface{}
	ShippingRaw        interface{}
	DetailedAddress    interface{}
	NationalAddressRaw interface{}
}

// OutboundPayload is the template message sent to the messaging API
type OutboundPayload struct {
	PhoneNumber      string  `json:"phone_number"`
	TemplateName     string  `json:"template_name"`
	TemplateLanguage string  `json:"template_language"`
	Field1           string  `json:"field_1"`
	Field2           string  `json:"field_2"`
	Field3           string  `json:"field_3"`
	Field4           string  `json:"field_4"`
	Field5           string  `json:"field_5"`
	Field6           string  `json:"field_6"`
	Field7           string  `json:"field_7"`
	Field8           string  `json:"field_8"`
	Field9           string  `json:"field_9"`
	Contact          Contact `json:"contact"`
}

// Contact creates or updates the recipient on the messaging platform
type Contact struct {
	FirstName   string `json:"first_name"`
	PhoneNumber string `json:"phone_number"`
	Country     string `json:"country"`
}

// SendResult is the decoded response of a template-message send
type SendResult struct {
	StatusCode int
	Data       interface{}
}
