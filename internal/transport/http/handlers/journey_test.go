package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"workforce/internal/app/server"
	"workforce/internal/platform/config"
)

type envelope struct {
	IsV1 bool            `json:"is_v1"`
	Data json.RawMessage `json:"data"`
}

type client struct {
	t     *testing.T
	http  *http.Client
	base  string
	token string
}

func (c *client) do(method, path string, payload any) (int, envelope) {
	c.t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			c.t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	if !env.IsV1 {
		c.t.Fatalf("%s %s: missing is_v1", method, path)
	}
	return resp.StatusCode, env
}

func (c *client) mustDo(method, path string, payload any, wantStatus int, out any) {
	c.t.Helper()
	status, env := c.do(method, path, payload)
	if status != wantStatus {
		c.t.Fatalf("%s %s: expected %d, got %d: %s", method, path, wantStatus, status, env.Data)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.t.Fatalf("%s %s: decode data: %v", method, path, err)
		}
	}
}

type record map[string]any

func (r record) str(key string) string {
	value, _ := r[key].(string)
	return value
}

func TestWorkforceJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:       dbURL,
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		Environment:       "test",
		TimeZone:          "UTC",
		RunMigrations:     true,
		RunSeed:           true,
		SeedAdminUsername: "journey-admin",
		SeedAdminPassword: "ChangeMe123!",
		MaxBodyBytes:      1048576,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	c := &client{t: t, http: ts.Client(), base: ts.URL}
	if status, _ := c.do(http.MethodGet, "/api/employees", nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	var tokenBody struct {
		Token string `json:"token"`
	}
	c.mustDo(http.MethodPost, "/api/auth/token", map[string]string{
		"username": cfg.SeedAdminUsername,
		"password": cfg.SeedAdminPassword,
	}, http.StatusOK, &tokenBody)
	c.token = tokenBody.Token

	suffix := time.Now().UnixNano()
	today := time.Now().UTC().Format("2006-01-02")

	var dept record
	c.mustDo(http.MethodPost, "/api/departments", map[string]any{
		"name":               fmt.Sprintf("Journey %d", suffix),
		"location":           "Berlin",
		"budget":             "1000.00",
		"established_date":   "2020-01-01",
		"head_of_department": "Ada Lovelace",
		"email":              "journey@example.com",
	}, http.StatusCreated, &dept)
	deptID := dept.str("id")

	newEmployee := func(first, salary string, manager any) record {
		var emp record
		c.mustDo(http.MethodPost, "/api/employees", map[string]any{
			"first_name": first,
			"last_name":  "Journey",
			"email":      fmt.Sprintf("%s-%d@example.com", first, suffix),
			"phone":      "555-0100",
			"hire_date":  today,
			"job_title":  "Engineer",
			"salary":     salary,
			"department": deptID,
			"manager":    manager,
		}, http.StatusCreated, &emp)
		return emp
	}

	manager := newEmployee("manager", "300", nil)
	report := newEmployee("report", "200", manager.str("id"))

	var fetched record
	c.mustDo(http.MethodGet, "/api/employees/"+report.str("id"), nil, http.StatusOK, &fetched)
	if fetched.str("email") != report.str("email") || fetched.str("salary") != "200.00" ||
		fetched.str("employment_type") != "FT" || fetched.str("department_name") != dept.str("name") ||
		fetched.str("manager_name") != "manager Journey" {
		t.Fatalf("unexpected employee round-trip %v", fetched)
	}

	status, _ := c.do(http.MethodPost, "/api/employees", map[string]any{
		"first_name": "dup", "last_name": "Journey", "email": report.str("email"), "phone": "1",
		"hire_date": today, "job_title": "x", "salary": "1", "department": deptID,
	})
	if status != http.StatusConflict {
		t.Fatalf("expected duplicate email to conflict, got %d", status)
	}

	attendance := map[string]any{"employee": report.str("id"), "date": today, "status": "PR", "check_in": "09:00"}
	var att record
	c.mustDo(http.MethodPost, "/api/attendance", attendance, http.StatusCreated, &att)
	if att.str("check_in") != "09:00:00" || att.str("employee_name") != "report Journey" {
		t.Fatalf("unexpected attendance %v", att)
	}
	if status, _ := c.do(http.MethodPost, "/api/attendance", attendance); status != http.StatusConflict {
		t.Fatalf("expected duplicate attendance to be rejected with 409, got %d", status)
	}

	c.mustDo(http.MethodPost, "/api/performance-reviews", map[string]any{
		"employee": report.str("id"), "review_date": today, "reviewer": "manager", "rating": 4,
	}, http.StatusCreated, nil)
	if status, _ := c.do(http.MethodPost, "/api/performance-reviews", map[string]any{
		"employee": report.str("id"), "review_date": today, "reviewer": "manager", "rating": 6,
	}); status != http.StatusBadRequest {
		t.Fatalf("expected rating 6 to be rejected, got %d", status)
	}
	var reviews []record
	c.mustDo(http.MethodGet, "/api/performance-reviews?min_rating=4&employee=journey", nil, http.StatusOK, &reviews)
	if len(reviews) == 0 {
		t.Fatal("expected review to match min_rating filter")
	}
	c.mustDo(http.MethodGet, "/api/performance-reviews?min_rating=100000", nil, http.StatusOK, &reviews)
	if len(reviews) != 0 {
		t.Fatalf("expected no reviews above the rating scale, got %v", reviews)
	}
	if status, _ := c.do(http.MethodGet, "/api/performance-reviews?min_rating=abc", nil); status != http.StatusInternalServerError {
		t.Fatalf("expected malformed min_rating to give 500, got %d", status)
	}

	var deptAnalytics []record
	c.mustDo(http.MethodGet, "/api/departments/analytics", nil, http.StatusOK, &deptAnalytics)
	found := false
	for _, row := range deptAnalytics {
		if row.str("department_id") != deptID {
			continue
		}
		found = true
		if row.str("avg_salary") != "250.00" || row.str("total_salary") != "500.00" || row.str("budget_utilization") != "50.00" {
			t.Fatalf("unexpected department analytics %v", row)
		}
	}
	if !found {
		t.Fatal("department missing from analytics")
	}

	var attAnalytics []record
	c.mustDo(http.MethodGet, "/api/attendance/analytics", nil, http.StatusOK, &attAnalytics)
	if len(attAnalytics) == 0 || attAnalytics[len(attAnalytics)-1].str("date") != today {
		t.Fatalf("expected today's attendance row last, got %v", attAnalytics)
	}

	var dashboard struct {
		TotalEmployees int      `json:"total_employees"`
		RecentHires    []record `json:"recent_hires"`
	}
	c.mustDo(http.MethodGet, "/api/dashboard", nil, http.StatusOK, &dashboard)
	if dashboard.TotalEmployees < 2 || len(dashboard.RecentHires) == 0 || len(dashboard.RecentHires) > 5 {
		t.Fatalf("unexpected dashboard %+v", dashboard)
	}

	c.mustDo(http.MethodDelete, "/api/employees/"+manager.str("id"), nil, http.StatusOK, nil)
	c.mustDo(http.MethodGet, "/api/employees/"+report.str("id"), nil, http.StatusOK, &fetched)
	if fetched["manager"] != nil {
		t.Fatalf("expected manager to be cleared, got %v", fetched["manager"])
	}

	c.mustDo(http.MethodDelete, "/api/departments/"+deptID, nil, http.StatusOK, nil)
	if status, _ := c.do(http.MethodGet, "/api/employees/"+report.str("id"), nil); status != http.StatusNotFound {
		t.Fatalf("expected employee to be removed with its department, got %d", status)
	}

	var events []record
	c.mustDo(http.MethodGet, "/api/audit-events?entity_type=department&entity_id="+deptID, nil, http.StatusOK, &events)
	if len(events) < 2 || events[0].str("action") != "delete" || events[0].str("actor_username") == "" {
		t.Fatalf("unexpected department audit trail %v", events)
	}
}
