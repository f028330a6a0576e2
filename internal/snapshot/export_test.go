package snapshot

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

func TestDecodeImportRejectsMissingCollections(t *testing.T) {
	cases := map[string]string{
		"missing orders":       `{"customers": [], "measurements": [], "garmentTypes": []}`,
		"missing customers":    `{"orders": [], "measurements": [], "garmentTypes": []}`,
		"missing measurements": `{"customers": [], "orders": [], "garmentTypes": []}`,
		"missing garmentTypes": `{"customers": [], "orders": [], "measurements": []}`,
		"not an object":        `[1, 2, 3]`,
		"not json":             `oops`,
	}

	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeImport([]byte(blob))
			assert.Error(t, err)
		})
	}
}

func TestDecodeImportWithoutEmployeesKeepsNil(t *testing.T) {
	blob := `{"customers": [], "orders": [], "measurements": [], "garmentTypes": []}`

	exp, err := DecodeImport([]byte(blob))
	require.NoError(t, err)
	assert.Nil(t, exp.Employees, "absence is preserved so restore can apply its default")
}

func TestDecodeImportUpgradesLegacyOrders(t *testing.T) {
	blob := `{
		"customers": [], "measurements": [], "garmentTypes": [],
		"orders": [{
			"id": "o1",
			"items": [{"id": "i1", "quantity": 2, "unitPrice": "300"}]
		}],
		"employees": [{"id": "e1", "name": "Suresh"}]
	}`

	exp, err := DecodeImport([]byte(blob))
	require.NoError(t, err)

	require.Len(t, exp.Orders, 1)
	assert.Len(t, exp.Orders[0].Items[0].Assignments, 2)
	require.Len(t, exp.Employees, 1)
	assert.NotNil(t, exp.Employees[0].Payments)
}

func TestCaptureExportRoundTrip(t *testing.T) {
	st := models.AppState{
		Theme:           models.ThemeDark,
		IsAuthenticated: true,
		Customers:       []models.Customer{{ID: "c1", FullName: "Asha"}},
		Measurements:    []models.Measurement{},
		Orders:          []models.Order{},
		GarmentTypes:    []models.GarmentTypeDefinition{{Name: "Shirt"}},
		Employees:       []models.Employee{},
		ShopInfo:        models.ShopInfo{Name: "Deepak Tailors"},
	}

	data, err := json.Marshal(CaptureExport(st))
	require.NoError(t, err)

	// Session fields never leak into the backup file
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.NotContains(t, keys, "theme")
	assert.NotContains(t, keys, "isAuthenticated")

	exp, err := DecodeImport(data)
	require.NoError(t, err)
	require.Len(t, exp.Customers, 1)
	assert.Equal(t, "Asha", exp.Customers[0].FullName)
	assert.Equal(t, "Deepak Tailors", exp.ShopInfo.Name)
}

// memStore is an in-memory snapshot.Store for exercising Load
type memStore struct {
	mu       sync.Mutex
	state    []byte
	remember bool
}

func (m *memStore) LoadState(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, ErrNotFound
	}
	return m.state, nil
}

func (m *memStore) SaveState(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = data
	return nil
}

func (m *memStore) LoadRemember(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remember, nil
}

func (m *memStore) SaveRemember(ctx context.Context, remember bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remember = remember
	return nil
}

func (m *memStore) Ping(ctx context.Context) error { return nil }
func (m *memStore) Name() string                   { return "memory" }

func TestLoadSeedsDefaultsWhenEmpty(t *testing.T) {
	st := Load(context.Background(), &memStore{})

	assert.False(t, st.IsAuthenticated)
	assert.Equal(t, models.LanguageEnglish, st.Language)
	assert.Equal(t, "Deepak Tailors", st.ShopInfo.Name)
	assert.Len(t, st.GarmentTypes, 4)
	assert.Empty(t, st.Customers)
}

func TestLoadRestoresPersistedState(t *testing.T) {
	store := &memStore{remember: true}
	snap := DefaultSnapshot()
	snap.Customers = []models.Customer{{ID: "c1", FullName: "Asha"}}
	data, err := Encode(snap)
	require.NoError(t, err)
	require.NoError(t, store.SaveState(context.Background(), data))

	st := Load(context.Background(), store)

	assert.True(t, st.IsAuthenticated, "remember flag restores the session")
	require.Len(t, st.Customers, 1)
	assert.Equal(t, "Asha", st.Customers[0].FullName)
}
