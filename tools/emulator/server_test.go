package emulator_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raywall/starkbank-go/errs"
	"github.com/raywall/starkbank-go/internal/testutil"
	"github.com/raywall/starkbank-go/rest"
	"github.com/raywall/starkbank-go/tools/emulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name,omitempty"`
	Amount int64    `json:"amount,omitempty"`
	Status string   `json:"status,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

type logRecord struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Payment record `json:"payment"`
}

var transfers = rest.Resource{Name: "Transfer"}

func TestServer_RequiresSignatureHeaders(t *testing.T) {
	ts := httptest.NewServer(emulator.New().Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/transfer")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_RejectsUnknownSigner(t *testing.T) {
	_, client := testutil.Emulator(t)
	stranger := testutil.Project(t)

	ctx := context.Background()
	other := *client
	other.User = stranger

	_, err := rest.GetID[record](ctx, &other, transfers, "1")
	apiErr, ok := errs.AsApiError(err)
	require.True(t, ok, "esperado ApiError, recebido %v", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.True(t, apiErr.HasCode("invalidSignature"))
}

func TestServer_CreateGetAndLog(t *testing.T) {
	srv, client := testutil.Emulator(t)
	ctx := context.Background()

	created, err := rest.Post(ctx, client, rest.Resource{Name: "UtilityPayment"}, []record{
		{Name: "luz", Amount: 100},
		{Name: "água", Amount: 200},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEmpty(t, created[0].ID)
	assert.Equal(t, "created", created[0].Status)
	assert.Equal(t, "água", created[1].Name)

	got, err := rest.GetID[record](ctx, client, rest.Resource{Name: "UtilityPayment"}, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, created[1], got)

	logs := srv.Store().List("utility-payment/log")
	require.Len(t, logs, 2)

	log, err := rest.GetID[logRecord](ctx, client, rest.Resource{Name: "UtilityPaymentLog"}, logs[0]["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "created", log.Type)
	assert.Equal(t, created[0].ID, log.Payment.ID)

	filtered, err := rest.Collect(ctx, rest.Query[logRecord](client, rest.Resource{Name: "UtilityPaymentLog"}, 0,
		map[string][]string{"paymentIds": {created[1].ID}}))
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, created[1].ID, filtered[0].Payment.ID)
}

func TestServer_SingleCreate(t *testing.T) {
	_, client := testutil.Emulator(t)

	type webhook struct {
		ID            string   `json:"id,omitempty"`
		URL           string   `json:"url"`
		Subscriptions []string `json:"subscriptions"`
	}

	created, err := rest.PostSingle(context.Background(), client, rest.Resource{Name: "Webhook"}, webhook{
		URL: "https://example.com/hook", Subscriptions: []string{"transfer"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"transfer"}, created.Subscriptions)
}

func TestServer_ListPaginationAndFilters(t *testing.T) {
	srv, client := testutil.Emulator(t)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		status := "processing"
		if i%3 == 0 {
			status = "success"
		}
		srv.Store().Seed("transfer", emulator.Object{
			"id":      fmt.Sprintf("%d", i),
			"status":  status,
			"tags":    []any{fmt.Sprintf("batch-%d", i%2)},
			"created": "2024-01-10T10:00:00Z",
		})
	}

	page, cursor, err := rest.GetPage[record](ctx, client, transfers, 0, "", nil)
	require.NoError(t, err)
	assert.Len(t, page, 100)
	assert.NotEmpty(t, cursor)

	page, cursor, err = rest.GetPage[record](ctx, client, transfers, 0, cursor, nil)
	require.NoError(t, err)
	assert.Len(t, page, 50)
	assert.Empty(t, cursor)

	success, err := rest.Collect(ctx, rest.Query[record](client, transfers, 0, map[string][]string{"status": {"success"}}))
	require.NoError(t, err)
	assert.Len(t, success, 50)

	both, err := rest.Collect(ctx, rest.Query[record](client, transfers, 0, map[string][]string{
		"status": {"success"},
		"tags":   {"batch-0"},
	}))
	require.NoError(t, err)
	assert.Len(t, both, 25)

	byID, err := rest.Collect(ctx, rest.Query[record](client, transfers, 0, map[string][]string{"ids": {"3,4,999"}}))
	require.NoError(t, err)
	assert.Len(t, byID, 2)

	after, err := rest.Collect(ctx, rest.Query[record](client, transfers, 0, map[string][]string{"after": {"2024-01-11"}}))
	require.NoError(t, err)
	assert.Empty(t, after)

	before, err := rest.Collect(ctx, rest.Query[record](client, transfers, 5, map[string][]string{"before": {"2024-01-10"}}))
	require.NoError(t, err)
	assert.Len(t, before, 5)
}

func TestServer_PatchDeleteAndPDF(t *testing.T) {
	srv, client := testutil.Emulator(t)
	ctx := context.Background()
	srv.Store().Seed("brcode-payment", emulator.Object{"id": "42", "status": "created"})

	res := rest.Resource{Name: "BrcodePayment"}
	patched, err := rest.PatchID[record](ctx, client, res, "42", map[string]string{"status": "canceling"})
	require.NoError(t, err)
	assert.Equal(t, "canceling", patched.Status)

	pdf, err := rest.GetContent(ctx, client, res, "42", "pdf")
	require.NoError(t, err)
	assert.Equal(t, emulator.PDF("brcode-payment", "42"), pdf)

	removed, err := rest.DeleteID[record](ctx, client, res, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", removed.ID)

	_, err = rest.GetID[record](ctx, client, res, "42")
	apiErr, ok := errs.AsApiError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, apiErr.HasCode("invalidId"))

	_, err = rest.GetContent(ctx, client, res, "42", "pdf")
	assert.Error(t, err)

	events := srv.Store().List("brcode-payment/log")
	require.Len(t, events, 2)
	assert.Equal(t, "canceling", events[0]["type"])
	assert.Equal(t, "canceled", events[1]["type"])
}

func TestServer_V2Prefix(t *testing.T) {
	srv, client := testutil.Emulator(t)
	srv.Store().Seed("dict-key", emulator.Object{"id": "tony@starkbank.com", "type": "email"})

	v2 := *client
	v2.BaseURL = client.BaseURL + "/v2"

	type dictKey struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	got, err := rest.GetID[dictKey](context.Background(), &v2, rest.Resource{Name: "DictKey"}, "tony@starkbank.com")
	require.NoError(t, err)
	assert.Equal(t, "tony@starkbank.com", got.ID)
	assert.Equal(t, "email", got.Type)
}

func TestServer_InvalidRequests(t *testing.T) {
	_, client := testutil.Emulator(t)
	ctx := context.Background()

	_, _, err := rest.GetPage[record](ctx, client, transfers, 0, "not-a-cursor!", nil)
	apiErr, ok := errs.AsApiError(err)
	require.True(t, ok)
	assert.True(t, apiErr.HasCode("invalidCursor"))

	_, err = rest.PostSingle(ctx, client, transfers, []int{1, 2})
	apiErr, ok = errs.AsApiError(err)
	require.True(t, ok)
	assert.True(t, apiErr.HasCode("invalidJson"))
}
