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
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "reference"
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
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func execSQL(t testing.TB, app *TestApp, statements ...string) {
	t.Helper()
	ctx := context.Background()

	for _, stmt := range statements {
		_, err := app.DB.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

// resetTables truncates everything so each scenario starts from a known
// empty database.
func resetTables(t testing.TB, app *TestApp) {
	t.Helper()
	execSQL(t, app,
		`TRUNCATE payments, show_seats, bookings, plays, cinema_seats, shows, movies, theaters, users RESTART IDENTITY CASCADE`,
	)
}

// seedBaseState loads one cinema with two theaters, one movie with one
// show playing in theater 7, two users, and four seats for the show at
// two price tiers.
func seedBaseState(t testing.TB, app *TestApp) {
	t.Helper()
	resetTables(t, app)

	execSQL(t, app,
		`INSERT INTO users (email, first_name, last_name, phone, password_hash) VALUES
			('amy@example.com', 'Amy', 'Pond', 15551234567, '\x00'),
			('rory@example.com', 'Rory', 'Williams', 15557654321, '\x00')`,
		`INSERT INTO movies (id, title, release_date, country, duration) VALUES
			(5, 'Arrival', '2016-11-11', 'USA', 116)`,
		`INSERT INTO theaters (id, cinema_id, name) VALUES
			(7, 2, 'Screen 1'),
			(8, 2, 'Screen 2')`,
		`INSERT INTO shows (id, movie_id, premiere_date, start_time, end_time) VALUES
			(42, 5, '2026-08-14', '2026-08-14T18:30:00Z', '2026-08-14T20:30:00Z')`,
		`INSERT INTO plays (show_id, theater_id) VALUES (42, 7)`,
		`INSERT INTO cinema_seats (theater_id, seat_number) VALUES
			(7, 1), (7, 2), (7, 3), (7, 4)`,
		`INSERT INTO show_seats (id, show_id, theater_id, seat_number, price, booking_id) VALUES
			(11, 42, 7, 1, 12.00, NULL),
			(12, 42, 7, 2, 12.00, NULL),
			(13, 42, 7, 3, 12.00, NULL),
			(14, 42, 7, 4, 20.00, NULL)`,
	)
}

// seedBooking adds a booking for the base show and optionally assigns it
// a seat.
func seedBooking(t testing.TB, app *TestApp, bookingID int, status string, seatID int) {
	t.Helper()
	ctx := context.Background()

	_, err := app.DB.Exec(ctx,
		`INSERT INTO bookings (id, status, booking_time, seat_count, show_id, user_email)
		 VALUES ($1, $2, '2026-08-01T10:00:00Z', 1, 42, 'amy@example.com')`,
		bookingID, status,
	)
	require.NoError(t, err)

	if seatID > 0 {
		_, err = app.DB.Exec(ctx,
			`UPDATE show_seats SET booking_id = $1 WHERE id = $2`, bookingID, seatID)
		require.NoError(t, err)
	}
}

func countRows(t testing.TB, app *TestApp, query string, args ...any) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow(context.Background(), query, args...).Scan(&count)
	require.NoError(t, err)

	return count
}
