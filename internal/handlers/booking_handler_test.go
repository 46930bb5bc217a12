package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"fitness_backend/internal/models"
	"fitness_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classBody struct {
	Class struct {
		ID              string `json:"id"`
		EnrolledCount   int    `json:"enrolled_count"`
		MaxParticipants int    `json:"max_participants"`
		AvailableSpots  int    `json:"available_spots"`
	} `json:"class"`
}

type bookingBody struct {
	Message string `json:"message"`
	Booking struct {
		ID           string `json:"id"`
		ClassID      string `json:"class_id"`
		Status       string `json:"status"`
		ClassDetails *struct {
			ID string `json:"id"`
		} `json:"class_details"`
	} `json:"booking"`
}

func getClass(t *testing.T, ts *helpers.TestServer, id string) classBody {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodGet, "/api/classes/"+id, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var resp classBody
	helpers.DecodeJSON(t, body, &resp)
	return resp
}

func book(t *testing.T, ts *helpers.TestServer, token, classID string) (int, string) {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/bookings", token, map[string]string{"class_id": classID})
	t.Logf("Response: %s", body)
	return res.StatusCode, body
}

func TestCreateBooking_ReducesAvailableSpots(t *testing.T) {
	ts := helpers.NewTestServer(t)
	class := helpers.CreateClass(t, ts.DB, 5)
	token, user := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	before := getClass(t, ts, class.ID)
	require.Equal(t, 5, before.Class.AvailableSpots)

	status, body := book(t, ts, token, class.ID)

	require.Equal(t, http.StatusCreated, status)
	var resp bookingBody
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, "Class booked successfully", resp.Message)
	assert.Equal(t, "confirmed", resp.Booking.Status)
	require.NotNil(t, resp.Booking.ClassDetails)
	assert.Equal(t, class.ID, resp.Booking.ClassDetails.ID)

	after := getClass(t, ts, class.ID)
	assert.Equal(t, before.Class.AvailableSpots-1, after.Class.AvailableSpots)
	assert.Equal(t, 1, after.Class.EnrolledCount)

	// бронь видна в списке пользователя
	res, listBody := ts.SendRequest(t, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list struct {
		Bookings []struct {
			UserID string `json:"user_id"`
		} `json:"bookings"`
	}
	helpers.DecodeJSON(t, listBody, &list)
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, user.ID, list.Bookings[0].UserID)
}

func TestCreateBooking_ClassFull(t *testing.T) {
	ts := helpers.NewTestServer(t)
	class := helpers.CreateClass(t, ts.DB, 1)
	first, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)
	second, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	status, _ := book(t, ts, first, class.ID)
	require.Equal(t, http.StatusCreated, status)

	status, body := book(t, ts, second, class.ID)

	require.Equal(t, http.StatusBadRequest, status)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Class is full", errResp.Error)
	assert.Equal(t, 1, getClass(t, ts, class.ID).Class.EnrolledCount)
}

func TestCreateBooking_AlreadyBooked(t *testing.T) {
	ts := helpers.NewTestServer(t)
	class := helpers.CreateClass(t, ts.DB, 5)
	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	status, _ := book(t, ts, token, class.ID)
	require.Equal(t, http.StatusCreated, status)

	status, body := book(t, ts, token, class.ID)

	require.Equal(t, http.StatusBadRequest, status)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Already booked for this class", errResp.Error)
	assert.Equal(t, 1, getClass(t, ts, class.ID).Class.EnrolledCount)
}

func TestCreateBooking_ClassNotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	status, body := book(t, ts, token, "missing")

	require.Equal(t, http.StatusNotFound, status)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Class not found", errResp.Error)
}

func TestCancelBooking(t *testing.T) {
	ts := helpers.NewTestServer(t)
	class := helpers.CreateClass(t, ts.DB, 5)
	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	status, body := book(t, ts, token, class.ID)
	require.Equal(t, http.StatusCreated, status)
	var created bookingBody
	helpers.DecodeJSON(t, body, &created)
	require.Equal(t, 1, getClass(t, ts, class.ID).Class.EnrolledCount)

	// первая отмена
	res, body := ts.SendRequest(t, http.MethodPost, "/api/bookings/"+created.Booking.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Booking cancelled successfully")
	assert.Equal(t, 0, getClass(t, ts, class.ID).Class.EnrolledCount)

	// повторная отмена не трогает счетчик
	res, body = ts.SendRequest(t, http.MethodPost, "/api/bookings/"+created.Booking.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Booking already cancelled", errResp.Error)
	assert.Equal(t, 0, getClass(t, ts, class.ID).Class.EnrolledCount)

	// после отмены можно забронировать снова
	status, _ = book(t, ts, token, class.ID)
	assert.Equal(t, http.StatusCreated, status)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	ts := helpers.NewTestServer(t)
	class := helpers.CreateClass(t, ts.DB, 5)
	owner, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)
	stranger, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	_, body := book(t, ts, owner, class.ID)
	var created bookingBody
	helpers.DecodeJSON(t, body, &created)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/bookings/"+created.Booking.ID+"/cancel", stranger, nil)

	require.Equal(t, http.StatusForbidden, res.StatusCode)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Unauthorized", errResp.Error)
	assert.Equal(t, 1, getClass(t, ts, class.ID).Class.EnrolledCount)
}

func TestCancelBooking_NotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/bookings/missing/cancel", token, nil)

	require.Equal(t, http.StatusNotFound, res.StatusCode)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Booking not found", errResp.Error)
}

func TestCreateBooking_ConcurrentNeverOverbooks(t *testing.T) {
	const capacity, members = 3, 20

	ts := helpers.NewTestServer(t)
	class := helpers.CreateClass(t, ts.DB, capacity)

	tokens := make([]string, members)
	for i := range tokens {
		tokens[i], _ = helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)
	}

	type result struct {
		status int
		body   string
		err    error
	}
	results := make(chan result, members)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			<-start

			req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/bookings",
				bytes.NewBufferString(`{"class_id":"`+class.ID+`"}`))
			if err != nil {
				results <- result{err: err}
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			res, err := ts.Server.Client().Do(req)
			if err != nil {
				results <- result{err: err}
				return
			}
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			results <- result{status: res.StatusCode, body: string(body), err: err}
		}(token)
	}
	close(start)
	wg.Wait()
	close(results)

	created, full := 0, 0
	for r := range results {
		require.NoError(t, r.err)
		switch r.status {
		case http.StatusCreated:
			created++
		case http.StatusBadRequest:
			assert.True(t, strings.Contains(r.body, "Class is full"), r.body)
			full++
		default:
			t.Fatalf("unexpected status %d: %s", r.status, r.body)
		}
	}

	assert.Equal(t, capacity, created)
	assert.Equal(t, members-capacity, full)

	var stored models.Class
	require.NoError(t, ts.DB.First(&stored, "id = ?", class.ID).Error)
	assert.Equal(t, capacity, stored.EnrolledCount)

	var confirmed int64
	require.NoError(t, ts.DB.Model(&models.Booking{}).
		Where("class_id = ? AND status = ?", class.ID, models.BookingStatusConfirmed).
		Count(&confirmed).Error)
	assert.Equal(t, int64(capacity), confirmed)
}
