package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UsersTestSuite struct {
	BaseSuite
}

func TestUsersSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(UsersTestSuite))
}

func (s *UsersTestSuite) TestRegisterUser() {
	scenarios := []Scenario{
		{
			Name:   "registers a user and stores a hashed password",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(`{
				"email": "clara@example.com",
				"firstName": "Clara",
				"lastName": "Oswald",
				"phone": 15550001111,
				"password": "Sup3rSecret!"
			}`),
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"email": "clara@example.com",
				"firstName": "Clara",
				"lastName": "Oswald",
				"phone": 15550001111
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetTables(t, app)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				require.Equal(t, 0, countRows(t, app,
					`SELECT count(*) FROM users WHERE email = 'clara@example.com' AND password_hash = 'Sup3rSecret!'::bytea`))
				require.Equal(t, 1, countRows(t, app,
					`SELECT count(*) FROM users WHERE email = 'clara@example.com'`))
			},
		},
		{
			Name:   "rejects a duplicate email",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(`{
				"email": "clara@example.com",
				"firstName": "Clara",
				"lastName": "Oswald",
				"phone": 15550001111,
				"password": "Sup3rSecret!"
			}`),
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "A user with this email address already exists"}`,
		},
		{
			Name:   "rejects a weak password",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(`{
				"email": "danny@example.com",
				"firstName": "Danny",
				"lastName": "Pink",
				"phone": 15550002222,
				"password": "password"
			}`),
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UsersTestSuite) TestGetUserBookings() {
	scenarios := []Scenario{
		{
			Name:           "returns what plays where with the held seat numbers",
			Method:         "GET",
			URL:            "/users/amy@example.com/bookings",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"email": "amy@example.com",
				"bookings": [
					{
						"bookingId": 1,
						"status": "Paid",
						"movieTitle": "Arrival",
						"premiereDate": "2026-08-14",
						"startTime": "2026-08-14T18:30:00Z",
						"theaterName": "Screen 1",
						"seatNumbers": [1, 2]
					}
				]
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedBaseState(t, app)
				seedBooking(t, app, 1, "Paid", 11)
				execSQL(t, app, `UPDATE show_seats SET booking_id = 1 WHERE id = 12`)
			},
		},
		{
			Name:             "returns 404 for an unknown user",
			Method:           "GET",
			URL:              "/users/ghost@example.com/bookings",
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "The requested resource not found"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UsersTestSuite) TestListUsersWithPendingBookings() {
	scenarios := []Scenario{
		{
			Name:           "lists each user holding a pending booking once",
			Method:         "GET",
			URL:            "/bookings/pending/users",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"users": [
					{"email": "amy@example.com", "firstName": "Amy", "lastName": "Pond"}
				]
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedBaseState(t, app)
				seedBooking(t, app, 1, "Pending", 0)
				seedBooking(t, app, 2, "Pending", 0)
				execSQL(t, app,
					`INSERT INTO bookings (id, status, booking_time, seat_count, show_id, user_email)
					 VALUES (3, 'Paid', '2026-08-01T10:00:00Z', 1, 42, 'rory@example.com')`)
			},
		},
		{
			Name:             "returns empty list when nothing is pending",
			Method:           "GET",
			URL:              "/bookings/pending/users",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"users": []}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedBaseState(t, app)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
