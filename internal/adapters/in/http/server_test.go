package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "haulaway/internal/adapters/in/http"
	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/application/usecases/queries"
	"haulaway/internal/core/domain/model/catalog"
	"haulaway/internal/core/domain/services"
	"haulaway/internal/generated/servers"
	"haulaway/internal/pkg/ratelimit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() services.QuoteCalculator {
	cat := catalog.NewCatalog(catalog.DefaultItems(), catalog.DefaultAreaRates(), catalog.DefaultLadderTiers())
	return services.NewQuoteCalculator(cat, nil)
}

// quoteOnlyServer carries just the dependencies the quote endpoint touches.
func quoteOnlyServer() *httpin.Server {
	return httpin.NewServer(
		testCalculator(),
		commands.CreateBookingCommandHandler{},
		commands.ChangeBookingStatusCommandHandler{},
		commands.AssignDriverCommandHandler{},
		commands.ReorderRouteCommandHandler{},
		commands.OptimizeRouteCommandHandler{},
		commands.AssignVehicleCommandHandler{},
		commands.RemoveVehicleAssignmentCommandHandler{},
		queries.GetDriverBookingsQueryHandler{},
		queries.GetDriverLoadStatsQueryHandler{},
	)
}

func postJSON(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateQuote_ReturnsServerSidePrices(t *testing.T) {
	server := quoteOnlyServer()
	ctx, rec := postJSON(t, "/api/v1/quotes",
		`{"area":"강남구","items":[{"category":"가구","name":"소파","quantity":2}]}`)

	err := server.CreateQuote(ctx)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var result servers.QuoteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 300_000, result.ItemsTotal)
	assert.Positive(t, result.TotalPrice)
	assert.Positive(t, result.CrewSize)
	assert.LessOrEqual(t, result.EstimateMin, result.TotalPrice)
	assert.GreaterOrEqual(t, result.EstimateMax, result.TotalPrice)
	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, "소파", result.Breakdown[0].Name)
}

func TestCreateQuote_SchemaViolations(t *testing.T) {
	server := quoteOnlyServer()

	tests := map[string]string{
		"empty items":          `{"area":"강남구","items":[]}`,
		"missing area":         `{"items":[{"name":"소파","quantity":1}]}`,
		"zero quantity":        `{"area":"강남구","items":[{"name":"소파","quantity":0}]}`,
		"quantity over cap":    `{"area":"강남구","items":[{"name":"소파","quantity":101}]}`,
		"nameless item":        `{"area":"강남구","items":[{"quantity":1}]}`,
		"ladder hours too big": `{"area":"강남구","items":[{"name":"소파","quantity":1}],"needLadder":true,"ladderType":"사다리차","ladderHours":11}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, rec := postJSON(t, "/api/v1/quotes", body)

			require.NoError(t, server.CreateQuote(ctx))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateQuote_UnknownItemDegradesToZeroPrice(t *testing.T) {
	server := quoteOnlyServer()
	ctx, rec := postJSON(t, "/api/v1/quotes",
		`{"area":"강남구","items":[{"name":"알 수 없는 물건","quantity":1}]}`)

	require.NoError(t, server.CreateQuote(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var result servers.QuoteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Zero(t, result.ItemsTotal)
}

func TestUpdateDriverBookingStatus_RequiresIdentityHeader(t *testing.T) {
	server := quoteOnlyServer()
	ctx, rec := postJSON(t, "/api/v1/driver/bookings/x/status", `{"status":"in_progress"}`)

	require.NoError(t, server.UpdateDriverBookingStatus(ctx, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteRateLimiter(t *testing.T) {
	e := echo.New()
	store := ratelimit.NewSlidingWindowStore(3, time.Minute)
	e.Use(httpin.QuoteRateLimiter(store))
	e.POST("/api/v1/quotes", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/v1/bookings", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	fire := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("denies after the allowance and hints a retry", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, fire("/api/v1/quotes").Code)
		}

		rec := fire("/api/v1/quotes")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	})

	t.Run("other routes are not limited", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusOK, fire("/api/v1/bookings").Code)
		}
	})
}
