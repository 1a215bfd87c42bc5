package placeholder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersJSON = `[
  {
    "id": 1,
    "name": "Leanne Graham",
    "username": "Bret",
    "email": "Sincere@april.biz",
    "address": {"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough", "zipcode": "92998-3874"},
    "phone": "1-770-736-8031 x56442",
    "website": "hildegard.org",
    "company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net"}
  },
  {
    "id": 2,
    "name": "Ervin Howell",
    "username": "Antonette",
    "email": "Shanna@melissa.tv",
    "phone": "010-692-6593 x09125",
    "website": "anastasia.net"
  }
]`

func TestListUsers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersJSON))
	}))
	t.Cleanup(srv.Close)

	users, err := New(srv.URL+"/", 0).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, User{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031 x56442",
		Website:  "hildegard.org",
		Address:  Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874"},
		Company:  Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
	}, users[0])
	require.Equal(t, "E", users[1].Initial())
}

func TestUserInitial(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Leanne Graham": "L",
		"ervin Howell":  "E",
		"  émile":       "É",
		"":              "?",
		"   ":           "?",
	}
	for name, want := range tests {
		require.Equal(t, want, User{Name: name}.Initial(), name)
	}
}

func TestCreatePostSendsBodyAndDecodesEcho(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var in map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, map[string]any{"title": "Hello", "body": "World", "userId": float64(3)}, in)

		in["id"] = 101
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, 0)
	post, err := c.CreatePost(context.Background(), NewPost{Title: "Hello", Body: "World", UserID: 3})
	require.NoError(t, err)
	require.Equal(t, Post{ID: 101, Title: "Hello", Body: "World", UserID: 3}, post)

	_, err = c.CreatePost(context.Background(), NewPost{Title: "Hello", Body: "World", UserID: 3})
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load(), "resubmitting issues a new request")
}

func TestNon2xxIsStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL, 0).ListUsers(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusInternalServerError, se.StatusCode)
	require.Contains(t, err.Error(), "Request failed with status code 500")
}

func TestBadJSONIsDecodeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL, 0).ListUsers(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}

func TestUnreachableIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, 0).ListUsers(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTimeoutIsErrTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	_, err := New(srv.URL, 50*time.Millisecond).ListUsers(context.Background())
	require.ErrorIs(t, err, ErrTimeout)
}

func TestNewDefaultsBaseURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultBaseURL, New("  ", 0).BaseURL)
	require.Equal(t, "http://x", New("http://x///", 0).BaseURL)
}
