package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/statelab/internal/bank"
	"github.com/jask/statelab/internal/forms"
	"github.com/jask/statelab/internal/placeholder"
)

func TestParseStep(t *testing.T) {
	c, err := parseStep("deposit:100")
	require.NoError(t, err)
	require.Equal(t, bank.Deposit{Amount: 10000}, c)

	c, err = parseStep(" Withdraw:$12.50 ")
	require.NoError(t, err)
	require.Equal(t, bank.Withdraw{Amount: 1250}, c)

	c, err = parseStep("reset")
	require.NoError(t, err)
	require.Equal(t, bank.Reset{}, c)

	_, err = parseStep("deposit:-5")
	require.ErrorIs(t, err, bank.ErrBadAmount)

	_, err = parseStep("transfer:5")
	require.Error(t, err)
}

func TestRunBankScript(t *testing.T) {
	var out bytes.Buffer
	teller := bank.NewTeller()
	runBankScript(&out, teller, []string{"deposit:100", "withdraw:150", "withdraw:40", "bogus", "reset"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "Deposited $100.00")
	require.Contains(t, lines[1], "insufficient funds")
	require.Contains(t, lines[1], "balance $100.00")
	require.Contains(t, lines[2], "Withdrew $40.00")
	require.Contains(t, lines[2], "balance $60.00")
	require.Contains(t, lines[3], "rejected")
	require.Contains(t, lines[4], "Account Reset")
	require.Equal(t, int64(0), teller.Balance())
}

func isolate(t *testing.T, baseURL string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STATELAB_CONFIG", "")
	t.Setenv("STATELAB_API_BASE_URL", baseURL)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBankCommand(t *testing.T) {
	isolate(t, "http://127.0.0.1:1")
	out, err := run(t, "bank", "deposit:100", "withdraw:150", "withdraw:40", "reset")
	require.NoError(t, err)
	require.Contains(t, out, "Withdrew $40.00")
	require.Contains(t, out, "insufficient funds")
}

func TestUsersCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]placeholder.User{{ID: 1, Name: "Leanne Graham", Username: "Bret", Company: placeholder.Company{Name: "Romaguera-Crona"}}})
	}))
	defer srv.Close()
	isolate(t, srv.URL)

	out, err := run(t, "users")
	require.NoError(t, err)
	require.Contains(t, out, "Leanne Graham")
	require.Contains(t, out, "@Bret")
	require.Contains(t, out, "Romaguera-Crona")
}

func TestPostCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p placeholder.NewPost
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, placeholder.NewPost{Title: "hi", Body: "This is a sample post body.", UserID: 3}, p)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(placeholder.Post{ID: 101, Title: p.Title, Body: p.Body, UserID: p.UserID})
	}))
	defer srv.Close()
	isolate(t, srv.URL)

	out, err := run(t, "post", "--title", "hi", "--user-id", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Post created successfully! ID: 101")
}

func TestPostCommandValidates(t *testing.T) {
	isolate(t, "http://127.0.0.1:1")
	_, err := run(t, "post", "--title", "hi", "--user-id", "11")
	require.ErrorIs(t, err, forms.ErrUserIDRange)
}

func TestUnknownStartRoute(t *testing.T) {
	isolate(t, "http://127.0.0.1:1")
	_, err := run(t, "--route", "/bankacount")
	require.EqualError(t, err, "no route /bankacount (did you mean /bankaccount?)")
}
