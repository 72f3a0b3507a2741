package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie/internal/audit"
	"menagerie/internal/platform/metrics"
	"menagerie/internal/zoo"
	zoometrics "menagerie/internal/zoo/metrics"
	"menagerie/internal/zoo/models"
	"menagerie/internal/zoo/service"
	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/testutil"
)

type testEnv struct {
	router http.Handler
	sink   *audit.InMemorySink
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	sink := audit.NewInMemorySink()
	publisher := audit.NewPublisher()
	worker := audit.NewWorker(sink, audit.NewLogSink(logger), publisher.Inbox(), logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	zones, creatures := zoo.NewServices(zoo.NewInMemoryStores(),
		service.WithLogger(logger),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(zoometrics.New(reg)),
	)
	h := zoo.NewHandler(zones, creatures, logger, nil)
	router := NewRouter(Deps{Logger: logger, Metrics: metrics.New(reg, reg)}, h)
	return testEnv{router: router, sink: sink}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodGet, "/health"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "status", "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestReadiness(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("all dependencies up", func(t *testing.T) {
		router := NewRouter(Deps{Logger: logger, Checks: map[string]HealthChecker{
			"store": HealthFunc(func(context.Context) error { return nil }),
		}})
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/ready"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "store", "up")
	})

	t.Run("one dependency down", func(t *testing.T) {
		router := NewRouter(Deps{Logger: logger, Checks: map[string]HealthChecker{
			"store": HealthFunc(func(context.Context) error { return nil }),
			"kafka": HealthFunc(func(context.Context) error { return errors.New("no brokers") }),
		}})
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/ready"))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		body := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "unavailable", body["status"])
		assert.Equal(t, "down", body["kafka"])
		assert.Equal(t, "up", body["store"])
	})
}

func TestZooScenario(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/zones", map[string]any{
		"name": "Bosque", "description": "Frondosa", "capacity": 80,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	zone := testutil.UnmarshalResponse[models.Zone](t, rr)
	require.False(t, zone.ID.IsNil())
	zonePath := "/api/zones/" + zone.ID.String()
	assert.Equal(t, zonePath, rr.Header().Get("Location"))

	summary := fetchSummary(t, env.router)
	require.Len(t, summary, 1)
	assert.Equal(t, models.ZoneSummary{
		ID: zone.ID, Name: "Bosque", Description: "Frondosa", Capacity: 80, CreaturesCount: 0,
	}, summary[0])

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/creatures", map[string]any{
		"name": "Fénix", "species": "Ave", "size": 1.0, "dangerLevel": 5, "healthStatus": "stable", "zoneId": zone.ID,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	creature := testutil.UnmarshalResponse[models.Creature](t, rr)
	require.NotNil(t, creature.Zone)
	assert.Equal(t, "Bosque", creature.Zone.Name)
	assert.Equal(t, zone.ID, creature.ZoneID)

	summary = fetchSummary(t, env.router)
	require.Len(t, summary, 1)
	assert.Equal(t, int64(1), summary[0].CreaturesCount)

	rr = testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodDelete, zonePath))
	testutil.AssertStatusAndError(t, rr, http.StatusConflict, "invariant_violation")

	rr = testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodGet, zonePath))
	testutil.AssertStatusOK(t, rr)

	require.Eventually(t, func() bool {
		return len(env.sink.Events()) == 2
	}, time.Second, 10*time.Millisecond)
	events := env.sink.Events()
	assert.Equal(t, audit.ActionZoneCreated, events[0].Action)
	assert.Equal(t, audit.ActionCreatureCreated, events[1].Action)
}

func TestCreatureLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/zones", map[string]any{
		"name": "Pantano", "capacity": 4,
	}))
	zone := testutil.UnmarshalResponse[models.Zone](t, rr)

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/creatures", map[string]any{
		"name": "Hidra", "species": "Serpiente", "size": 4.5, "dangerLevel": 5, "healthStatus": "critical", "zoneId": zone.ID,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	creaturePath := rr.Header().Get("Location")
	require.True(t, strings.HasPrefix(creaturePath, "/api/creatures/"))

	rr = testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodDelete, creaturePath))
	testutil.AssertStatusAndError(t, rr, http.StatusConflict, "invariant_violation")

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPut, creaturePath, map[string]any{
		"healthStatus": "stable",
	}))
	testutil.AssertStatusOK(t, rr)
	updated := testutil.UnmarshalResponse[models.Creature](t, rr)
	assert.Equal(t, "stable", updated.HealthStatus)
	assert.Equal(t, "Hidra", updated.Name)
	assert.Equal(t, 4.5, updated.Size)

	rr = testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodDelete, creaturePath))
	testutil.AssertStatus(t, rr, http.StatusNoContent)

	rr = testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodGet, creaturePath))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")

	rr = testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodDelete, "/api/zones/"+zone.ID.String()))
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}

func TestValidationErrorsAndConflicts(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/zones", map[string]any{
		"name": "Bosque", "capacity": 3,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/zones", map[string]any{
		"name": "Bosque", "capacity": 3,
	}))
	testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")
	testutil.AssertJSONContains(t, rr, "error_description", "Zone name already exists: Bosque")

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/creatures", map[string]any{
		"name": "Grifo", "species": "Híbrido", "size": 0.05, "dangerLevel": 9, "healthStatus": "stable", "zoneId": 1,
	}))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	assert.Contains(t, rr.Body.String(), "size must be at least 0.1")
	assert.Contains(t, rr.Body.String(), "dangerLevel must be between 1 and 5")

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/creatures", map[string]any{
		"name": "Grifo", "species": "Híbrido", "size": 2.0, "dangerLevel": 3, "healthStatus": "stable", "zoneId": 999,
	}))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestCreatureFieldViolations(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/creatures", map[string]any{
		"name": "", "species": "Ave", "size": 1.0, "dangerLevel": 5, "healthStatus": "stable",
	}))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")

	body := testutil.UnmarshalResponse[struct {
		Fields []dErrors.FieldError `json:"fields"`
	}](t, rr)
	assert.Equal(t, []dErrors.FieldError{
		{Field: "name", Message: "must not be blank"},
		{Field: "zoneId", Message: "must not be null"},
	}, body.Fields)
}

func TestHealthStatusStoredAsSent(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/zones", map[string]any{
		"name": "Cueva", "capacity": 2,
	}))
	zone := testutil.UnmarshalResponse[models.Zone](t, rr)

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/creatures", map[string]any{
		"name": "Basilisco", "species": "Reptil", "size": 3.0, "dangerLevel": 4, "healthStatus": "stable", "zoneId": zone.ID,
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	creaturePath := rr.Header().Get("Location")

	rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(t, http.MethodPut, creaturePath, map[string]any{
		"healthStatus": " critical ",
	}))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "healthStatus", " critical ")

	rr = testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodDelete, creaturePath))
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodGet, "/api/zones"))
	rr := testutil.DoRequest(env.router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
	assert.Contains(t, rr.Body.String(), "zoo_http_requests_total")
}

func fetchSummary(t *testing.T, router http.Handler) []models.ZoneSummary {
	t.Helper()
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/zones/summary"))
	testutil.AssertStatusOK(t, rr)
	return *testutil.UnmarshalResponse[[]models.ZoneSummary](t, rr)
}
