package marketplace

import "encoding/json"

// Offer is a maker's posted request as the marketplace returns it. Fields are
// kept as received, absence is resolved by the display projection, not here.
type Offer struct {
	ID           json.Number `json:"id"`
	Title        string      `json:"title"`
	BudgetTON    json.Number `json:"budgetTON"`
	Status       string      `json:"status"`
	CreatedAt    string      `json:"createdAt"`
	MakerAddress string      `json:"makerAddress"`
	Description  string      `json:"description,omitempty"`
}

// OrderRequest is the order-creation payload shared by both action flows.
type OrderRequest struct {
	Title        string  `json:"title"`
	MakerAddress string  `json:"makerAddress"`
	PriceTON     float64 `json:"priceTON"`
	OfferID      string  `json:"offerId"`
}

// CreatedOrder is the normalized order-creation result. The API answers either
// with a bare {id} or with the full order envelope carrying the escrow fields.
type CreatedOrder struct {
	ID           string
	ContractAddr string
	TakerStake   float64
}

type offerResponse struct {
	Offer *Offer `json:"offer"`
}

type orderEnvelope struct {
	ID           json.Number `json:"id"`
	ContractAddr string      `json:"contractAddr"`
	TakerStake   float64     `json:"takerStake"`
}

type createOrderResponse struct {
	orderEnvelope
	Order *orderEnvelope `json:"order"`
}

func (r createOrderResponse) normalize() CreatedOrder {
	out := CreatedOrder{
		ID:           r.orderEnvelope.ID.String(),
		ContractAddr: r.orderEnvelope.ContractAddr,
		TakerStake:   r.orderEnvelope.TakerStake,
	}
	if r.Order == nil {
		return out
	}
	if out.ID == "" {
		out.ID = r.Order.ID.String()
	}
	if out.ContractAddr == "" {
		out.ContractAddr = r.Order.ContractAddr
	}
	if out.TakerStake == 0 {
		out.TakerStake = r.Order.TakerStake
	}
	return out
}

type selfChatRequest struct {
	Address string `json:"address"`
}

type selfChatResponse struct {
	Order *orderEnvelope `json:"order"`
}

type takeOrderRequest struct {
	Action       string `json:"action"`
	TakerAddress string `json:"takerAddress"`
}

type payloadResponse struct {
	Base64 string `json:"base64"`
}
