// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/infra/dependency"
	"github.com/finance-tracker/planner/internal/integration/email"
	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
	"github.com/finance-tracker/planner/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testJWTIssuer = "https://identity.test"
)

type testContext struct {
	cfg         *config.Config
	server      *httptest.Server
	injector    *dependency.Injector
	client      *http.Client
	headers     map[string]string
	accessToken string
	response    *response
	db          *mock.Db
	redis       *redis.Client
	timeMock    *mock.Time
	resendMock  *mock.ApiMock
	evicted     int
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"state_records": &model.StateRecordModel{},
			"email_queue":   &model.EmailQueueModel{},
		}),
		redis: mock.NewRedis(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Setup steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Step(`^I am signed in as "([^"]*)"$`, test.iAmSignedInAs)
	ctx.Step(`^the identity provider is configured with api key "([^"]*)"$`, test.theIdentityProviderIsConfiguredWithAPIKey)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^the email worker runs$`, test.theEmailWorkerRuns)
	ctx.Step(`^(\d+) minutes pass$`, test.minutesPass)
	ctx.Step(`^the session janitor runs$`, test.theSessionJanitorRuns)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Storage assertion steps
	ctx.Step(`^the state store should hold the key "([^"]*)"$`, test.theStateStoreShouldHoldTheKey)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) "([^"]*)" rows with status "([^"]*)"$`, test.theDbShouldContainRowsWithStatus)
	ctx.Step(`^the session janitor should have evicted (\d+) sessions?$`, test.theSessionJanitorShouldHaveEvicted)

	// Email provider assertion steps
	ctx.Step(`^the email provider should have received (\d+) emails?$`, test.theEmailProviderShouldHaveReceived)
	ctx.Step(`^the email provider request (\d+) field "([^"]*)" should contain "([^"]*)"$`, test.theEmailProviderRequestFieldShouldContain)
	ctx.Step(`^the email provider request (\d+) header "([^"]*)" should be "([^"]*)"$`, test.theEmailProviderRequestHeaderShouldBe)
}

func (t *testContext) before() error {
	t.cfg = config.Load()
	t.cfg.Server.Environment = "test"
	t.cfg.Storage.Backend = config.StoreBackendRedis
	t.cfg.Identity.JWTSecret = testJWTSecret
	t.cfg.Identity.JWTIssuer = testJWTIssuer
	t.cfg.Identity.APIKey = ""
	t.cfg.Email.FromName = "Budget Planner"
	t.cfg.Email.AppBaseURL = "https://planner.test"

	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.server = nil
	t.injector = nil
	t.evicted = 0
	t.timeMock = mock.NewTime()

	t.resendMock = mock.NewApiServer()
	t.resendMock.Start()
	t.resendMock.SetResponse(-1, http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "re_mock"})

	if err := mock.ClearRedis(t.redis); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return t.db.ClearDB()
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
	}
	if t.resendMock != nil {
		t.resendMock.Close()
	}
}

// ensureServer wires the application on first use so that Given steps can still change the config.
func (t *testContext) ensureServer() error {
	if t.server != nil {
		return nil
	}

	sender := email.NewResendClient("re_test_key", t.cfg.Email.FromName, t.cfg.Email.FromEmail)
	if err := sender.SetBaseURL(t.resendMock.GetUrl()); err != nil {
		return err
	}

	backends := &dependency.Backends{
		States:  persistence.NewRedisStateStore(t.redis),
		QueueDB: t.db.DbConn,
		Healthy: func(ctx context.Context) bool { return t.redis.Ping(ctx).Err() == nil },
	}

	injector, err := dependency.NewInjector(t.cfg, backends, sender, t.timeMock)
	if err != nil {
		return err
	}

	t.injector = injector
	t.server = httptest.NewServer(injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}
