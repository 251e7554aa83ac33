package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jsonapi "gitlab.com/distributed_lab/json-api-connector"
	"gitlab.com/distributed_lab/logan/v3/errors"
	"gitlab.com/tokend/connectors/signed"
)

func newTestClient(t *testing.T, h http.Handler) Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	endpoint, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return NewClient(jsonapi.NewConnector(signed.NewClient(&http.Client{Timeout: 5 * time.Second}, endpoint)))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestOffer(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(t, w, map[string]interface{}{"offer": map[string]interface{}{
			"id":           42,
			"title":        "Logo design",
			"budgetTON":    3.5,
			"status":       "open",
			"makerAddress": "EQmaker",
		}})
	}))

	offer, err := c.Offer(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "/api/offers/42", gotPath)
	assert.Equal(t, "42", offer.ID.String())
	assert.Equal(t, "Logo design", offer.Title)
	assert.Equal(t, "EQmaker", offer.MakerAddress)
}

func TestOfferNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	offer, err := c.Offer(context.Background(), "42")

	assert.Equal(t, ErrNotFound, errors.Cause(err))
	assert.Nil(t, offer)
}

func TestOfferMissingField(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]interface{}{"something": "else"})
	}))

	offer, err := c.Offer(context.Background(), "42")

	require.Error(t, err)
	assert.Nil(t, offer)
}

func TestOfferNonJSONBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>offer</html>"))
	}))

	offer, err := c.Offer(context.Background(), "42")

	require.Error(t, err)
	assert.Nil(t, offer)
}

func TestCreateOrderFlatResponse(t *testing.T) {
	var gotBody OrderRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, map[string]interface{}{"id": "101"})
	}))

	created, err := c.CreateOrder(context.Background(), OrderRequest{
		Title:        "Logo design",
		MakerAddress: "EQmaker",
		PriceTON:     3.5,
		OfferID:      "42",
	})

	require.NoError(t, err)
	assert.Equal(t, "101", created.ID)
	assert.Empty(t, created.ContractAddr)
	assert.Zero(t, created.TakerStake)
	assert.Equal(t, "EQmaker", gotBody.MakerAddress)
	assert.Equal(t, 3.5, gotBody.PriceTON)
}

func TestCreateOrderEnvelopeResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]interface{}{"order": map[string]interface{}{
			"id":           101,
			"contractAddr": "EQcontract",
			"takerStake":   2,
		}})
	}))

	created, err := c.CreateOrder(context.Background(), OrderRequest{OfferID: "42"})

	require.NoError(t, err)
	assert.Equal(t, "101", created.ID)
	assert.Equal(t, "EQcontract", created.ContractAddr)
	assert.Equal(t, float64(2), created.TakerStake)
}

func TestCreateOrderMissingID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]interface{}{"order": map[string]interface{}{}})
	}))

	created, err := c.CreateOrder(context.Background(), OrderRequest{OfferID: "42"})

	require.Error(t, err)
	assert.Nil(t, created)
}

func TestCreateSelfChat(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat/self", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, map[string]interface{}{"order": map[string]interface{}{"id": "77"}})
	}))

	chatID, err := c.CreateSelfChat(context.Background(), "EQabc")

	require.NoError(t, err)
	assert.Equal(t, "77", chatID)
	assert.Equal(t, map[string]string{"address": "EQabc"}, gotBody)
}

func TestTakeOrder(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/orders/101", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, map[string]interface{}{"ok": true})
	}))

	err := c.TakeOrder(context.Background(), "101", "EQtaker")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"action": "take", "takerAddress": "EQtaker"}, gotBody)
}

func TestTakeOrderFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))

	assert.Error(t, c.TakeOrder(context.Background(), "101", "EQtaker"))
}

func TestStakePayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ton/payload", r.URL.Path)
		require.Equal(t, "4098", r.URL.Query().Get("op"))
		writeJSON(t, w, map[string]interface{}{"base64": "dGVzdA=="})
	}))

	payload, err := c.StakePayload(context.Background(), 0x1002)

	require.NoError(t, err)
	assert.Equal(t, "dGVzdA==", payload)
}
