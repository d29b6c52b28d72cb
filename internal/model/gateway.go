package model

// PaymentCallback is the payment gateway's callback payload. The
// gateway posts it form-encoded, as JSON, or as query parameters on a
// GET redirect, always with these wire field names. Fild1 carries the
// order number we passed through at checkout.
type PaymentCallback struct {
	TransactionID string `json:"Id" form:"Id" query:"Id"`
	ResultCode    string `json:"CCode" form:"CCode" query:"CCode"` // "0" = success
	Amount        string `json:"Amount" form:"Amount" query:"Amount"` // minor units (agorot)
	AuthCode      string `json:"ACode" form:"ACode" query:"ACode"`
	OrderNumber   string `json:"Fild1" form:"Fild1" query:"Fild1"`
	Field2        string `json:"Fild2" form:"Fild2" query:"Fild2"`
	Field3        string `json:"Fild3" form:"Fild3" query:"Fild3"`
	Currency      string `json:"Coin" form:"Coin" query:"Coin"` // "1" = ILS
	CardLast4     string `json:"L4digit" form:"L4digit" query:"L4digit"`
	Payments      string `json:"Hesh" form:"Hesh" query:"Hesh"`
	GatewayUserID string `json:"UserId" form:"UserId" query:"UserId"`
	Signature     string `json:"Sign" form:"Sign" query:"Sign"`
}
