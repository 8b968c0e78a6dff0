package payment

type createInput struct {
	Body CreateRequest
}

type CreateRequest struct {
	ProductID string `json:"productId" doc:"Product to purchase"`
	Amount    int64  `json:"amount" doc:"Amount in minor units"`
	Currency  string `json:"currency" example:"USD" doc:"ISO currency code"`
}

type createOutput struct {
	Body CreateResponse
}

type CreateResponse struct {
	PaymentID string `json:"paymentId"`
	URL       string `json:"url" doc:"Hosted checkout page URL"`
}

type webhookInput struct {
	DodoSignature  string `header:"dodo-signature"`
	XDodoSignature string `header:"x-dodo-signature"`
	RawBody        []byte
}

type webhookOutput struct {
	Body WebhookResponse
}

type WebhookResponse struct {
	Received bool `json:"received"`
}
