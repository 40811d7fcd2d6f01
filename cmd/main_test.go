package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-car-rental/internal/config"
	"github.com/sbilibin2017/gw-car-rental/internal/handlers"
	"github.com/sbilibin2017/gw-car-rental/internal/hasher"
	"github.com/sbilibin2017/gw-car-rental/internal/jwt"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

type carServiceMock struct {
	*handlers.MockCarBasicsCreator
	*handlers.MockCarStageUpdater
	*handlers.MockCarGetter
	*handlers.MockCarLister
}

type routerFixture struct {
	handler  http.Handler
	tokens   *jwt.JWT
	sqlMock  sqlmock.Sqlmock
	carList  *handlers.MockCarLister
	payments *handlers.MockPaymentMethodManager
}

func newRouterFixture(t *testing.T, burst int) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")

	tokens := jwt.New(jwt.WithSecretKey("router-secret"), jwt.WithExpiration(time.Minute))
	passwords := hasher.New()

	// Guards and validation failures never reach the account stores.
	hosts := services.NewAuthService(models.RoleHost, nil, nil, passwords, tokens, nil)
	clients := services.NewAuthService(models.RoleClient, nil, nil, passwords, tokens, nil)

	cars := carServiceMock{
		MockCarBasicsCreator: handlers.NewMockCarBasicsCreator(ctrl),
		MockCarStageUpdater:  handlers.NewMockCarStageUpdater(ctrl),
		MockCarGetter:        handlers.NewMockCarGetter(ctrl),
		MockCarLister:        handlers.NewMockCarLister(ctrl),
	}
	payments := handlers.NewMockPaymentMethodManager(ctrl)

	cfg := &config.Config{
		AppHost:             "localhost",
		AppPort:             "8080",
		LoginRateLimitRPS:   0.001,
		LoginRateLimitBurst: burst,
	}

	return &routerFixture{
		handler:  newRouter(cfg, db, tokens, hosts, clients, cars, payments),
		tokens:   tokens,
		sqlMock:  mock,
		carList:  cars.MockCarLister,
		payments: payments,
	}
}

func (f *routerFixture) bearer(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := f.tokens.Generate(context.Background(), 1, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func (f *routerFixture) do(method, target, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func TestNewRouter(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		rr := f.do(http.MethodGet, "/", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Car Rental API"}`, rr.Body.String())
	})

	t.Run("health pings the database", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		f.sqlMock.ExpectPing()

		rr := f.do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("request id header", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		rr := f.do(http.MethodGet, "/", "", "")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("profile without token", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		rr := f.do(http.MethodGet, "/api/v1/host/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	})

	t.Run("client token on host car route", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		rr := f.do(http.MethodPost, "/api/v1/cars/basics", f.bearer(t, models.RoleClient), `{"name":"x"}`)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("host token on client route", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		rr := f.do(http.MethodGet, "/api/v1/client/me", f.bearer(t, models.RoleHost), "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("client token on payment methods", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		rr := f.do(http.MethodGet, "/api/v1/host/payment-methods", f.bearer(t, models.RoleClient), "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		rr := f.do(http.MethodPut, "/api/v1/cars/1/specs", "Bearer not-a-jwt", "{}")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("public car list", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		f.carList.EXPECT().List(gomock.Any(), 0, 5).Return([]models.CarDB{{ID: 1}}, nil)

		rr := f.do(http.MethodGet, "/api/v1/cars?limit=5", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("registration validated before storage", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		body := `{"full_name":"Jane","email":"jane@example.com","password":"password1","password_confirmation":"password2"}`
		rr := f.do(http.MethodPost, "/api/v1/client/auth/register", "", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestNewRouter_LoginRateLimit(t *testing.T) {
	f := newRouterFixture(t, 1)

	rr := f.do(http.MethodPost, "/api/v1/host/auth/login", "", "{")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = f.do(http.MethodPost, "/api/v1/client/auth/login", "", "{")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))

	// registration is not throttled
	rr = f.do(http.MethodPost, "/api/v1/host/auth/register", "", "{")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{
		AppHost:              "127.0.0.1",
		AppPort:              "18086",
		LogLevel:             "debug",
		GRPCHealthPort:       "19096",
		PostgresHost:         pgHost,
		PostgresPort:         pgPort.Int(),
		PostgresUser:         "user",
		PostgresPassword:     "password",
		PostgresDB:           "testdb",
		PostgresMaxOpenConns: 5,
		PostgresMaxIdleConns: 2,
		JWTSecretKey:         "testsecret",
		JWTExp:               time.Minute,
		LoginRateLimitRPS:    5,
		LoginRateLimitBurst:  10,
	}

	// The port can open before Postgres accepts connections.
	require.Eventually(t, func() bool {
		db, err := sqlx.Connect("pgx", cfg.PostgresDSN())
		if err != nil {
			return false
		}
		db.Close()
		return true
	}, 30*time.Second, 500*time.Millisecond)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(runCtx, cfg)
	}()

	baseURL := fmt.Sprintf("http://%s:%s", cfg.AppHost, cfg.AppPort)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 20*time.Second, 200*time.Millisecond)

	conn, err := grpc.NewClient(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCHealthPort),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	checkCtx, checkCancel := context.WithTimeout(ctx, 5*time.Second)
	defer checkCancel()
	healthResp, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, healthResp.GetStatus())

	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
