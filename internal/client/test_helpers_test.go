package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nysertxs/conekta-go/internal/auth"
	internalhttp "github.com/nysertxs/conekta-go/internal/http"
	"github.com/nysertxs/conekta-go/pkg/conekta"
)

const testKey = "key_test_123"

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, auth.StaticKey(testKey))

	return NewWithTransport(httpClient, &conekta.Config{APIEndpoint: baseURL})
}

// recordedRequest is what a test server saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// testServer answers every request with the same status and body and
// records the requests it received.
type testServer struct {
	*httptest.Server

	calls    atomic.Int32
	requests chan recordedRequest
}

func newTestServer(t *testing.T, statusCode int, body string) *testServer {
	t.Helper()

	server := &testServer{requests: make(chan recordedRequest, 16)}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		server.calls.Add(1)

		assert.Equal(t, auth.BasicAuthorization(testKey), request.Header.Get("Authorization"))

		raw, err := io.ReadAll(request.Body)
		assert.NoError(t, err)

		server.requests <- recordedRequest{
			Method: request.Method,
			Path:   request.URL.EscapedPath(),
			Query:  request.URL.RawQuery,
			Body:   string(raw),
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(statusCode)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func (s *testServer) next(t *testing.T) recordedRequest {
	t.Helper()

	select {
	case req := <-s.requests:
		return req
	default:
		require.FailNow(t, "no request recorded")

		return recordedRequest{}
	}
}

// TestOperation represents a single-resource operation test case.
type TestOperation[TResponse any] struct {
	Name         string
	Call         func(context.Context, *Client) (*TResponse, error)
	StatusCode   int
	Response     string
	ExpectedVerb string
	ExpectedPath string
	ExpectedBody string
	WantErr      bool
	ErrMessage   string
	Check        func(*testing.T, *TResponse)
}

// RunOperationTests runs a series of single-resource operation tests.
func RunOperationTests[TResponse any](t *testing.T, tests []TestOperation[TResponse]) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, testCase.StatusCode, testCase.Response)
			client := NewTestClient(server.URL)

			result, err := testCase.Call(context.Background(), client)

			req := server.next(t)
			assert.Equal(t, testCase.ExpectedVerb, req.Method)
			assert.Equal(t, testCase.ExpectedPath, req.Path)

			if testCase.ExpectedBody == "" {
				assert.Empty(t, req.Body)
			} else {
				assert.JSONEq(t, testCase.ExpectedBody, req.Body)
			}

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}
