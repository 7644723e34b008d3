package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	partnerapp "github.com/smedge/backend/internal/application/partner"
	reportapp "github.com/smedge/backend/internal/application/report"
	tradeapp "github.com/smedge/backend/internal/application/trade"
	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/trade"
	"github.com/smedge/backend/internal/infrastructure/persistence"
	"github.com/smedge/backend/internal/infrastructure/persistence/models"
	"github.com/smedge/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer wires the full HTTP stack over an in-memory database
type testServer struct {
	engine  *gin.Engine
	clients *partnerapp.ClientService
	orders  *tradeapp.OrderService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.TransactionModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
	))

	clientRepo := persistence.NewGormClientRepository(db)
	txRepo := persistence.NewGormTransactionRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	l := ledger.NewLedger()
	logger := zap.NewNop()

	clientService := partnerapp.NewClientService(clientRepo, txRepo, l, logger)
	orderService := tradeapp.NewOrderService(orderRepo, clientRepo, txRepo, l, trade.NewOrderNumberGenerator(), logger)
	reportService := reportapp.NewReportService(l)

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewClientHandler(clientService)).
		Register(NewOrderHandler(orderService)).
		Register(NewReportHandler(reportService)).
		Setup()

	return &testServer{
		engine:  engine,
		clients: clientService,
		orders:  orderService,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// envelope mirrors the standard response wrapper for assertions
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func registerClient(t *testing.T, s *testServer, name string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/clients", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)

	var client struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &client)
	return client.ID
}
