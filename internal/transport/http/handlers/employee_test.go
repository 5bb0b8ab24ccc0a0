package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/transport/http/handlers"
	mocks "github.com/UnknownOlympus/hestia/mock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newTestApp(t *testing.T, uc handlers.EmployeeUseCase) *fiber.App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return handlers.NewApp(logger, appMetrics, handlers.NewHandler(logger, uc), config.HTTPConfig{})
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func salaryIs(want float64) any {
	return mock.MatchedBy(func(s *float64) bool { return s != nil && *s == want })
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, mocks.NewEmployeeUseCase(t))

	resp := doRequest(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "OK"}, decode[map[string]string](t, resp))
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("CreateEmployee", mock.Anything, "Alice", "Engineer", salaryIs(90000), "admin").
			Return(models.Employee{ID: 7, Name: "Alice", Position: "Engineer", Salary: 90000}, nil).
			Once()

		resp := doRequest(t, app, http.MethodPost, "/api/employees",
			`{"name":"Alice","position":"Engineer","salary":90000,"createdBy":"admin"}`)

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		got := decode[models.Employee](t, resp)
		assert.Equal(t, models.Employee{ID: 7, Name: "Alice", Position: "Engineer", Salary: 90000}, got)
	})

	t.Run("missing createdBy never reaches the use case", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		resp := doRequest(t, app, http.MethodPost, "/api/employees",
			`{"name":"Alice","position":"Engineer","salary":90000}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "createdBy user is required", decode[errorBody](t, resp).Message)
		uc.AssertNotCalled(t, "CreateEmployee")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		resp := doRequest(t, app, http.MethodPost, "/api/employees", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid request body", decode[errorBody](t, resp).Message)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("CreateEmployee", mock.Anything, "", "Engineer", salaryIs(1), "admin").
			Return(models.Employee{}, models.NewError(models.KindInvalidInput,
				"invalid employee data provided: name is required")).
			Once()

		resp := doRequest(t, app, http.MethodPost, "/api/employees",
			`{"name":"","position":"Engineer","salary":1,"createdBy":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid employee data provided: name is required", decode[errorBody](t, resp).Message)
	})
}

func TestGetEmployees(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		list := []models.Employee{
			{ID: 1, Name: "Alice", Position: "Engineer", Salary: 90000},
			{ID: 2, Name: "Bob", Position: "Designer", Salary: 60000},
		}
		uc.On("GetEmployees", mock.Anything).Return(list, nil).Once()

		resp := doRequest(t, app, http.MethodGet, "/api/employees", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, list, decode[[]models.Employee](t, resp))
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("GetEmployees", mock.Anything).Return([]models.Employee{}, nil).Once()

		resp := doRequest(t, app, http.MethodGet, "/api/employees", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw))
	})

	t.Run("storage failure hides the cause", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("GetEmployees", mock.Anything).
			Return(nil, models.Infrastructure("failed to get employees", errors.New("dial tcp: connection refused"))).
			Once()

		resp := doRequest(t, app, http.MethodGet, "/api/employees", "")

		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"Internal server error","error":"failed to get employees"}`, string(raw))
		assert.NotContains(t, string(raw), "connection refused")
	})
}

func TestGetEmployee(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("GetEmployee", mock.Anything, 3).
			Return(models.Employee{ID: 3, Name: "Carol", Position: "Manager", Salary: 70000}, nil).
			Once()

		resp := doRequest(t, app, http.MethodGet, "/api/employees/3", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 3, decode[models.Employee](t, resp).ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("GetEmployee", mock.Anything, 404).
			Return(models.Employee{}, models.NewError(models.KindNotFound, "employee with ID 404 not found")).
			Once()

		resp := doRequest(t, app, http.MethodGet, "/api/employees/404", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "employee with ID 404 not found", decode[errorBody](t, resp).Message)
	})

	t.Run("non numeric id", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		resp := doRequest(t, app, http.MethodGet, "/api/employees/abc", "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid employee ID", decode[errorBody](t, resp).Message)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("updated", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("UpdateEmployee", mock.Anything, 5, "Dan", "Lead", salaryIs(120000), "hr").
			Return(models.Employee{ID: 5, Name: "Dan", Position: "Lead", Salary: 120000}, nil).
			Once()

		resp := doRequest(t, app, http.MethodPut, "/api/employees/5",
			`{"name":"Dan","position":"Lead","salary":120000,"updatedBy":"hr"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.InDelta(t, 120000, decode[models.Employee](t, resp).Salary, 0)
	})

	t.Run("missing updatedBy is checked before the id", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		resp := doRequest(t, app, http.MethodPut, "/api/employees/abc",
			`{"name":"Dan","position":"Lead","salary":1}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "updatedBy user is required", decode[errorBody](t, resp).Message)
		uc.AssertNotCalled(t, "UpdateEmployee")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		resp := doRequest(t, app, http.MethodPut, "/api/employees/12abc",
			`{"name":"Dan","position":"Lead","salary":1,"updatedBy":"hr"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid employee ID", decode[errorBody](t, resp).Message)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("UpdateEmployee", mock.Anything, 999999, "Dan", "Lead", salaryIs(1), "hr").
			Return(models.Employee{}, models.NewError(models.KindNotFound,
				"employee with ID 999999 not found for update")).
			Once()

		resp := doRequest(t, app, http.MethodPut, "/api/employees/999999",
			`{"name":"Dan","position":"Lead","salary":1,"updatedBy":"hr"}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	t.Run("actor from body", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("DeleteEmployee", mock.Anything, 2, "boss").Return(nil).Once()

		resp := doRequest(t, app, http.MethodDelete, "/api/employees/2", `{"deletedBy":"boss"}`)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("actor from query string", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("DeleteEmployee", mock.Anything, 2, "auditor").Return(nil).Once()

		resp := doRequest(t, app, http.MethodDelete, "/api/employees/2?deletedBy=auditor", "")

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("body wins over query string", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("DeleteEmployee", mock.Anything, 2, "boss").Return(nil).Once()

		resp := doRequest(t, app, http.MethodDelete, "/api/employees/2?deletedBy=auditor", `{"deletedBy":"boss"}`)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("missing actor", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		resp := doRequest(t, app, http.MethodDelete, "/api/employees/2", "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "deletedBy user is required", decode[errorBody](t, resp).Message)
		uc.AssertNotCalled(t, "DeleteEmployee")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("DeleteEmployee", mock.Anything, 999999, "boss").
			Return(models.NewError(models.KindNotFound, "employee with ID 999999 not found for deletion")).
			Once()

		resp := doRequest(t, app, http.MethodDelete, "/api/employees/999999?deletedBy=boss", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetEmployeesBySalaryRange(t *testing.T) {
	t.Parallel()

	t.Run("in range", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		list := []models.Employee{{ID: 2, Name: "Bob", Position: "Designer", Salary: 60000}}
		uc.On("GetEmployeesBySalaryRange", mock.Anything, 50000.0, 70000.0).Return(list, nil).Once()

		resp := doRequest(t, app, http.MethodGet, "/api/employees/salary-range?minSalary=50000&maxSalary=70000", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, list, decode[[]models.Employee](t, resp))
	})

	cases := []struct {
		name  string
		query string
	}{
		{name: "missing bounds", query: ""},
		{name: "missing max", query: "?minSalary=10"},
		{name: "non numeric", query: "?minSalary=abc&maxSalary=10"},
		{name: "not a number", query: "?minSalary=NaN&maxSalary=10"},
		{name: "infinite", query: "?minSalary=0&maxSalary=Inf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			uc := mocks.NewEmployeeUseCase(t)
			app := newTestApp(t, uc)

			resp := doRequest(t, app, http.MethodGet, "/api/employees/salary-range"+tc.query, "")

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "invalid minSalary or maxSalary provided", decode[errorBody](t, resp).Message)
			uc.AssertNotCalled(t, "GetEmployeesBySalaryRange")
		})
	}

	t.Run("inverted range rejected by the use case", func(t *testing.T) {
		t.Parallel()
		uc := mocks.NewEmployeeUseCase(t)
		app := newTestApp(t, uc)

		uc.On("GetEmployeesBySalaryRange", mock.Anything, 70000.0, 50000.0).
			Return(nil, models.NewError(models.KindInvalidRange, "invalid salary range provided")).
			Once()

		resp := doRequest(t, app, http.MethodGet, "/api/employees/salary-range?minSalary=70000&maxSalary=50000", "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, mocks.NewEmployeeUseCase(t))

	resp := doRequest(t, app, http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, decode[errorBody](t, resp).Message)
}

func TestPanicIsRecovered(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, mocks.NewEmployeeUseCase(t))
	app.Get("/boom", func(_ *fiber.Ctx) error {
		panic("boom")
	})

	resp := doRequest(t, app, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", decode[errorBody](t, resp).Message)
}
