package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/planner/internal/integration/adapters"
)

func (t *testContext) theAPIServerIsRunning() error {
	return t.ensureServer()
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if t.server != nil {
		return fmt.Errorf("set the date before the API server starts")
	}
	t.timeMock.SetCurrentTime(day.Add(9 * time.Hour))
	return nil
}

func (t *testContext) minutesPass(minutes int) error {
	t.timeMock.Advance(time.Duration(minutes) * time.Minute)
	return nil
}

func (t *testContext) theSessionJanitorRuns() error {
	if err := t.ensureServer(); err != nil {
		return err
	}
	t.evicted, _ = t.injector.Janitor.Sweep()
	return nil
}

func (t *testContext) theSessionJanitorShouldHaveEvicted(count int) error {
	if t.evicted != count {
		return fmt.Errorf("expected %d evicted sessions, got %d", count, t.evicted)
	}
	return nil
}

func (t *testContext) iAmSignedInAs(userID string) error {
	tokens := adapters.NewTokenService(testJWTSecret, testJWTIssuer, t.timeMock)
	token, err := tokens.GenerateToken(userID, userID+"@example.com", time.Hour)
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) theIdentityProviderIsConfiguredWithAPIKey(key string) error {
	if t.server != nil {
		return fmt.Errorf("configure the identity provider before the API server starts")
	}
	t.cfg.Identity.APIKey = key
	t.cfg.Identity.ProjectID = "planner-test"
	t.cfg.Identity.AuthDomain = "planner-test.example.com"
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.send(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	return t.send(method, endpoint, bytes.NewBufferString(body.Content))
}

func (t *testContext) send(method, endpoint string, body io.Reader) error {
	if err := t.ensureServer(); err != nil {
		return err
	}

	req, err := http.NewRequest(method, t.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = &response{status: resp.StatusCode, raw: raw}
	if len(raw) > 0 {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			t.response.body = parsed
		}
	}
	return nil
}

func (t *testContext) theEmailWorkerRuns() error {
	if err := t.ensureServer(); err != nil {
		return err
	}
	t.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookup(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookup(field)
	return err
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if _, err := t.lookup(field); err == nil {
		return fmt.Errorf("field '%s' should not be in response: %s", field, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	value, err := t.lookup(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

// lookup resolves a dotted path such as "cells.5.date" in the response body.
func (t *testContext) lookup(path string) (any, error) {
	if t.response == nil || t.response.body == nil {
		return nil, fmt.Errorf("no JSON response received")
	}

	current := t.response.body
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(t.response.raw))
			}
			current = value
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(t.response.raw))
		}
	}
	return current, nil
}

func (t *testContext) theStateStoreShouldHoldTheKey(key string) error {
	n, err := t.redis.Exists(context.Background(), key).Result()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("key %q not found in the state store", key)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(count int, table string) error {
	n, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if int(n) != count {
		return fmt.Errorf("expected %d rows in %s, got %d", count, table, n)
	}
	return nil
}

func (t *testContext) theDbShouldContainRowsWithStatus(count int, table, status string) error {
	n, err := t.db.CountWhere(table, "status", status)
	if err != nil {
		return err
	}
	if int(n) != count {
		return fmt.Errorf("expected %d %s rows with status %s, got %d", count, table, status, n)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceived(count int) error {
	got := t.resendMock.GetRequestCount(http.MethodPost, "/emails")
	if got != count {
		return fmt.Errorf("expected %d emails sent to the provider, got %d", count, got)
	}
	return nil
}

func (t *testContext) theEmailProviderRequestFieldShouldContain(index int, field, expected string) error {
	body := t.resendMock.GetRequestBody(http.MethodPost, "/emails", index)
	if body == nil {
		return fmt.Errorf("no email provider request at index %d", index)
	}
	value, ok := body[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in provider request", field)
	}
	if actual := fmt.Sprintf("%v", value); !strings.Contains(actual, expected) {
		return fmt.Errorf("provider request field '%s' is '%s', expected it to contain '%s'", field, actual, expected)
	}
	return nil
}

func (t *testContext) theEmailProviderRequestHeaderShouldBe(index int, header, expected string) error {
	headers := t.resendMock.GetRequestHeaders(http.MethodPost, "/emails", index)
	if headers == nil {
		return fmt.Errorf("no email provider request at index %d", index)
	}
	if actual := headers.Get(header); actual != expected {
		return fmt.Errorf("provider request header '%s' is '%s', expected '%s'", header, actual, expected)
	}
	return nil
}
