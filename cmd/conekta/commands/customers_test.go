package commands_test

import (
	"testing"

	"github.com/nysertxs/conekta-go/cmd/conekta/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerBody = `{
	"id": "cus_1",
	"object": "customer",
	"name": "Fulanito Pérez",
	"email": "fulanito@example.com",
	"phone": "+5215555555555",
	"corporate": false,
	"metadata": {"tier": "gold", "score": 7},
	"created_at": 1700000000
}`

func TestNewCustomersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCustomersCommand()
	assert.Equal(t, "customers", cmd.Use)
	assert.NotNil(t, findSubcommand(cmd, "list"))
	assert.NotNil(t, findSubcommand(cmd, "get"))
	assert.Nil(t, findSubcommand(cmd, "delete"))
}

func TestCustomersList(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"GET /customers": `{"object":"list","has_more":false,"data":[` + customerBody + `],"previous_page_url":"https://api.conekta.io/customers?previous=cus_0"}`,
	})

	out, err := executeCommand(t, "", "customers", "list", "--api", api.URL, "--key", "key_test_1", "--search", "fulanito")
	require.NoError(t, err)

	assert.Contains(t, out, "cus_1")
	assert.Contains(t, out, "fulanito@example.com")
	assert.Contains(t, out, "Previous results: --previous cus_0")
	assert.NotContains(t, out, "More results")

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "search=fulanito", requests[0].Query)
}

func TestCustomersList_Empty(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"GET /customers": `{"object":"list","has_more":false,"data":[]}`,
	})

	out, err := executeCommand(t, "", "customers", "list", "--api", api.URL, "--key", "key_test_1")
	require.NoError(t, err)
	assert.Equal(t, "No customers found\n", out)
}

func TestCustomersGet(t *testing.T) {
	api := newFakeAPI(t, map[string]string{"GET /customers/cus_1": customerBody})

	out, err := executeCommand(t, "", "customers", "get", "cus_1", "--api", api.URL, "--key", "key_test_1")
	require.NoError(t, err)

	assert.Contains(t, out, "metadata.score")
	assert.Contains(t, out, "metadata.tier")
	assert.Contains(t, out, "gold")
	assert.Contains(t, out, "2023-11-14 22:13:20")

	out, err = executeCommand(t, "", "customers", "get", "cus_1", "--api", api.URL, "--key", "key_test_1", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"score": "7"`)
}

func TestCustomersGet_UnknownOutput(t *testing.T) {
	api := newFakeAPI(t, map[string]string{"GET /customers/cus_1": customerBody})

	_, err := executeCommand(t, "", "customers", "get", "cus_1", "--api", api.URL, "--key", "key_test_1", "--output", "xml")
	require.ErrorIs(t, err, commands.ErrUnknownOutput)
}
