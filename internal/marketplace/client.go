package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	jsonapi "gitlab.com/distributed_lab/json-api-connector"
	"gitlab.com/distributed_lab/json-api-connector/cerrors"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// ErrNotFound is returned when the requested offer does not exist.
var ErrNotFound = errors.New("offer not found")

// Client is the typed boundary to the marketplace API. Response shapes are
// validated here so the flows never touch raw payloads.
type Client interface {
	Offer(ctx context.Context, id string) (*Offer, error)
	CreateSelfChat(ctx context.Context, address string) (string, error)
	CreateOrder(ctx context.Context, req OrderRequest) (*CreatedOrder, error)
	TakeOrder(ctx context.Context, orderID, takerAddress string) error
	StakePayload(ctx context.Context, op uint32) (string, error)
}

type client struct {
	c *jsonapi.Connector
}

func NewClient(c *jsonapi.Connector) Client {
	return &client{c: c}
}

func (q *client) Offer(_ context.Context, id string) (*Offer, error) {
	u, _ := url.Parse("/api/offers/" + id)

	var resp offerResponse
	if err := q.c.Get(u, &resp); err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get offer")
	}
	if resp.Offer == nil {
		return nil, errors.New("offer is missing in response")
	}

	return resp.Offer, nil
}

func (q *client) CreateSelfChat(ctx context.Context, address string) (string, error) {
	u, _ := url.Parse("/api/chat/self")

	var resp selfChatResponse
	err := q.c.PostJSON(u, selfChatRequest{Address: address}, ctx, &resp)
	if err != nil {
		return "", errors.Wrap(err, "failed to create self chat")
	}
	if resp.Order == nil || resp.Order.ID.String() == "" {
		return "", errors.New("self chat id is missing in response")
	}

	return resp.Order.ID.String(), nil
}

func (q *client) CreateOrder(ctx context.Context, req OrderRequest) (*CreatedOrder, error) {
	u, _ := url.Parse("/api/orders")

	var resp createOrderResponse
	if err := q.c.PostJSON(u, req, ctx, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	created := resp.normalize()
	if created.ID == "" {
		return nil, errors.New("order id is missing in response")
	}

	return &created, nil
}

func (q *client) TakeOrder(ctx context.Context, orderID, takerAddress string) error {
	u, _ := url.Parse("/api/orders/" + orderID)

	body := takeOrderRequest{Action: "take", TakerAddress: takerAddress}
	err := q.c.PatchJSON(u, body, ctx, nil)
	return errors.Wrap(err, "failed to mark order taken")
}

func (q *client) StakePayload(_ context.Context, op uint32) (string, error) {
	u, _ := url.Parse("/api/ton/payload?op=" + strconv.FormatUint(uint64(op), 10))

	var resp payloadResponse
	if err := q.c.Get(u, &resp); err != nil {
		return "", errors.Wrap(err, "failed to get stake payload")
	}

	return resp.Base64, nil
}

func isNotFound(err error) bool {
	if c, ok := err.(cerrors.Error); ok {
		return c.Status() == http.StatusNotFound
	}
	// the connector reports plain 404s with a bare message
	return err.Error() == "not found"
}
