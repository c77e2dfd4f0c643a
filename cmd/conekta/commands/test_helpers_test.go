package commands_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/nysertxs/conekta-go/cmd/conekta/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// executeCommand runs the CLI with args in an isolated home directory and
// returns what it printed. The CLI keeps its settings in the global viper
// instance, so callers must not run in parallel.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONEKTA_PRIVATE_KEY", "")
	t.Setenv("CONEKTA_API_ENDPOINT", "")

	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-01")
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

// apiRequest is what the fake API saw.
type apiRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeAPI serves canned bodies by path and records requests.
type fakeAPI struct {
	*httptest.Server

	mutex    sync.Mutex
	requests []apiRequest
}

func newFakeAPI(t *testing.T, routes map[string]string) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)

		api.mutex.Lock()
		api.requests = append(api.requests, apiRequest{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.RawQuery,
			Body:   string(body),
		})
		api.mutex.Unlock()

		key := request.Method + " " + request.URL.Path
		for _, cursor := range []string{"next", "previous"} {
			if value := request.URL.Query().Get(cursor); value != "" {
				key += "?" + cursor + "=" + value
			}
		}

		response, ok := routes[key]
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"type":"resource_not_found_error","message":"not found"}`))

			return
		}

		_, _ = writer.Write([]byte(response))
	}))
	t.Cleanup(api.Close)

	return api
}

func (a *fakeAPI) recorded() []apiRequest {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return append([]apiRequest(nil), a.requests...)
}
