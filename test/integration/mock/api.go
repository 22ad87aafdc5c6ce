package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

type cannedResponse struct {
	status int
	body   any
}

// ApiMock records the requests an outside HTTP API receives and answers them
// with canned responses. Responses are looked up by method and path, first for
// the request index and then for the default registered with index -1.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]map[string]any
	headers   map[string][]http.Header
	responses map[string]map[int]cannedResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]map[string]any{},
		headers:   map[string][]http.Header{},
		responses: map[string]map[int]cannedResponse{},
	}
}

func (a *ApiMock) Start() {
	engine := gin.New()
	engine.NoRoute(a.handle)
	a.server = httptest.NewServer(engine)
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if a.responses[key] == nil {
		a.responses[key] = map[int]cannedResponse{}
	}
	a.responses[key][index] = cannedResponse{status: status, body: response}
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	received := a.requests[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) http.Header {
	a.mu.Lock()
	defer a.mu.Unlock()

	received := a.headers[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

func (a *ApiMock) GetRequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

func (a *ApiMock) handle(c *gin.Context) {
	raw, _ := io.ReadAll(c.Request.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	a.mu.Lock()
	key := c.Request.Method + c.Request.URL.Path
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], body)
	a.headers[key] = append(a.headers[key], c.Request.Header.Clone())

	resp, ok := a.responses[key][index]
	if !ok {
		resp, ok = a.responses[key][-1]
	}
	a.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusNotFound, body: gin.H{"message": "no canned response"}}
	}
	c.JSON(resp.status, resp.body)
}
