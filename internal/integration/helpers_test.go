package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch nested := m[k].(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if itemMap, ok := item.(map[string]any); ok {
					cleanMap(itemMap)
				}
			}
		}
	}
}

func resetCatalog(t testing.TB, app *TestApp) {
	_, err := app.DB.Exec(context.Background(), "TRUNCATE plays")
	require.NoError(t, err)

	require.NoError(t, app.Redis.FlushDB(context.Background()).Err())
}

func insertTestPlay(t testing.TB, app *TestApp, id, name string, lines int, genre domain.Genre) {
	_, err := app.DB.Exec(context.Background(),
		"INSERT INTO plays (id, name, lines, genre) VALUES ($1, $2, $3, $4)",
		id, name, lines, string(genre))
	require.NoError(t, err)
}

// seedRepertory loads the plays the billing scenarios are built from.
func seedRepertory(t testing.TB, app *TestApp) {
	resetCatalog(t, app)

	insertTestPlay(t, app, "hamlet", "Hamlet", 4024, domain.GenreTragedy)
	insertTestPlay(t, app, "as-like", "As You Like It", 2670, domain.GenreComedy)
	insertTestPlay(t, app, "othello", "Othello", 3560, domain.GenreTragedy)
	insertTestPlay(t, app, "henry-v", "Henry V", 3227, domain.GenreHistory)
	insertTestPlay(t, app, "john", "King John", 2648, domain.GenreHistory)
}
