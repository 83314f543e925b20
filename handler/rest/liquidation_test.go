package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"liquidator/core"
	"liquidator/service/nft"
	"liquidator/service/position"
	"liquidator/service/scanner"
	"liquidator/store/db"
	"liquidator/store/liquidation"

	"github.com/glebarez/sqlite"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeScanner struct {
	items []*core.Liquidatable
	err   error
}

func (f *fakeScanner) Liquidatable(ctx context.Context) ([]*core.Liquidatable, error) {
	return f.items, f.err
}

type fakeStore struct {
	core.ILiquidationStore
	upserted [][]*core.Liquidation
	err      error
}

func (f *fakeStore) UpsertAll(ctx context.Context, rows []*core.Liquidation) error {
	f.upserted = append(f.upserted, rows)
	return f.err
}

type stubPools struct{}

func (stubPools) Unhealthy(ctx context.Context, p *core.Position) core.Result[bool] {
	return core.Ok(true)
}

type stubOracles struct{}

func (stubOracles) FloorPrice(ctx context.Context, oracle, tokenID string) core.Result[*big.Int] {
	return core.Ok(big.NewInt(250))
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.Must(uuid.NewV4()).String())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database := db.New(gdb)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiquidatableHandler(t *testing.T) {
	items := []*core.Liquidatable{{
		Position:     &core.Position{ID: "0xabc-7", Account: core.Ref{ID: "0xalice"}},
		TokenID:      "7",
		NFT:          core.NFT{Contract: &core.NFTContract{Address: "0xnft"}, TokenID: "7"},
		Liquidatable: true,
		FloorPrice:   "250",
		Debt:         "500",
	}}
	store := &fakeStore{}

	w := get(t, Handle(&fakeScanner{items: items}, store), "/liquidatable")
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "500", body[0]["debt"])
	assert.Equal(t, "250", body[0]["floorPrice"])

	require.Len(t, store.upserted, 1)
	require.Len(t, store.upserted[0], 1)
	assert.Equal(t, "0xnft", store.upserted[0][0].CollateralAddress)
}

func TestLiquidatableHandlerEmpty(t *testing.T) {
	w := get(t, Handle(&fakeScanner{items: []*core.Liquidatable{}}, &fakeStore{}), "/liquidatable")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestLiquidatableHandlerErrors(t *testing.T) {
	store := &fakeStore{}
	w := get(t, Handle(&fakeScanner{err: errors.New("indexer down")}, store), "/liquidatable")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "failed to fetch liquidatable positions", "details": "indexer down"}`, w.Body.String())
	assert.Empty(t, store.upserted)

	store = &fakeStore{err: errors.New("db down")}
	w = get(t, Handle(&fakeScanner{items: []*core.Liquidatable{}}, store), "/liquidatable")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "db down")
}

func TestLiquidatableIndexerUnavailable(t *testing.T) {
	indexer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer indexer.Close()

	proxyCalls := 0
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxyCalls++
		_, _ = w.Write([]byte(`{"ownedNfts": []}`))
	}))
	defer proxy.Close()

	s := scanner.New(
		position.New(core.Indexer{Endpoint: indexer.URL}),
		nft.New(core.NFTProxy{Endpoint: proxy.URL}),
		stubPools{}, stubOracles{}, nil,
	)
	store := &fakeStore{}

	w := get(t, Handle(s, store), "/liquidatable")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.Contains(t, body["details"], "503")
	assert.Empty(t, store.upserted)
	assert.Equal(t, 0, proxyCalls)
}

func TestLiquidatableEndToEnd(t *testing.T) {
	indexer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"positions": [{
			"id": "0xabc-7",
			"account": {"id": "0xalice"},
			"token": {"id": "0xnft"},
			"borrowShares": "50",
			"pool": {
				"id": "0xabc",
				"totalBorrowShares": "100",
				"totalBorrowAssets": "1000",
				"oracle": "0xoracle",
				"loanToken": {"id": "0xusdc"},
				"collateralToken": {"id": "0xnft"}
			}
		}]}}`))
	}))
	defer indexer.Close()

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ownedNfts": [
			{"contract": {"address": "0xnft", "name": "Punks", "symbol": "PUNK"}, "tokenId": "7"}
		]}`))
	}))
	defer proxy.Close()

	s := scanner.New(
		position.New(core.Indexer{Endpoint: indexer.URL}),
		nft.New(core.NFTProxy{Endpoint: proxy.URL}),
		stubPools{}, stubOracles{}, nil,
	)
	store := liquidation.New(openTestDB(t))
	h := Handle(s, store)

	for i := 0; i < 2; i++ {
		w := get(t, h, "/liquidatable")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	all, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)

	row, err := store.Find(context.Background(), "0xnft", "7")
	require.NoError(t, err)
	assert.Equal(t, "500", row.Debt)
	assert.Equal(t, "250", row.FloorPrice)
	assert.Equal(t, "Punks", row.NFTName)
	assert.Equal(t, "0xusdc", row.LoanAddress)

	w := get(t, h, "/liquidations/0xnft/7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"debt":"500"`)

	w = get(t, h, "/liquidations/0xnft/8")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, h, "/liquidations?account=0xalice")
	require.Equal(t, http.StatusOK, w.Code)
	var rows []*core.Liquidation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)

	w = get(t, h, "/liquidations?account=0xbob")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
