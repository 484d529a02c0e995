package dictkey_test

import (
	"context"
	"testing"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/dictkey"
	"github.com/raywall/starkbank-go/errs"
	"github.com/raywall/starkbank-go/internal/testutil"
	"github.com/raywall/starkbank-go/rest"
	"github.com/raywall/starkbank-go/tools/emulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(srv *emulator.Server) {
	srv.Store().Seed("dict-key",
		emulator.Object{"id": "tony@starkbank.com", "type": "email", "status": "registered", "name": "Tony Stark", "ispb": "20018183"},
		emulator.Object{"id": "a3b1c2d4-0000-4000-8000-000000000001", "type": "evp", "status": "registered"},
		emulator.Object{"id": "a3b1c2d4-0000-4000-8000-000000000002", "type": "evp", "status": "canceled"},
	)
}

func TestGet(t *testing.T) {
	srv, client := testutil.Emulator(t)
	seed(srv)

	k, err := dictkey.Get(context.Background(), client, "tony@starkbank.com")
	require.NoError(t, err)
	assert.Equal(t, "tony@starkbank.com", k.ID)
	assert.Equal(t, "email", k.Type)
	assert.Equal(t, "20018183", k.Ispb)
}

func TestQuery(t *testing.T) {
	srv, client := testutil.Emulator(t)
	seed(srv)

	got, err := rest.Collect(context.Background(), dictkey.Query(client, dictkey.Filter{Limit: 1, Type: "evp", Status: "registered"}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "registered", got[0].Status)

	page, cursor, err := dictkey.Page(context.Background(), client, "", dictkey.Filter{Type: "evp"})
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Empty(t, cursor)
}

func TestNew_RoundTrip(t *testing.T) {
	k, err := dictkey.New(checks.Params{
		"id":             "tony@starkbank.com",
		"type":           "email",
		"name":           "Tony Stark",
		"taxId":          "***.345.678-**",
		"ownerType":      "naturalPerson",
		"ispb":           "20018183",
		"branchCode":     "0001",
		"accountNumber":  "10000-0",
		"accountType":    "checking",
		"accountCreated": "2020-03-10T10:30:00Z",
		"status":         "registered",
		"owned":          "2020-03-10T10:30:00Z",
		"created":        "2020-03-10T10:30:00.5Z",
	})
	require.NoError(t, err)
	assert.Equal(t, k, testutil.RoundTrip(t, k, dictkey.New))

	_, err = dictkey.New(checks.Params{"id": "x", "owner": "tony"})
	assert.True(t, errs.IsValidation(err))
}
