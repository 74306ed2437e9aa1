package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/internal/api"
	"github.com/dmitrymomot/passgen/pkg/passgen"
	"github.com/dmitrymomot/passgen/pkg/requestid"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type passwordsBody struct {
	Data struct {
		Passwords []string        `json:"passwords"`
		Phonetic  []string        `json:"phonetic"`
		QR        []string        `json:"qr"`
		Stats     []passgen.Stats `json:"stats"`
	} `json:"data"`
}

func newServer(t *testing.T, opts ...api.Option) *httptest.Server {
	t.Helper()
	gen := passgen.New(passgen.WithSource(passgen.CryptoSource))
	srv := httptest.NewServer(api.New(gen, opts...).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/passwords", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestGeneratePasswords(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		resp := post(t, srv, `{}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(requestid.Header))
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

		body := decode[passwordsBody](t, resp)
		require.Len(t, body.Data.Passwords, 1)
		assert.Len(t, body.Data.Passwords[0], 16)
		require.Len(t, body.Data.Stats, 1)
		assert.Equal(t, 16, body.Data.Stats[0].Total)
		assert.Zero(t, body.Data.Stats[0].Symbol)
		assert.Empty(t, body.Data.Phonetic)
		assert.Empty(t, body.Data.QR)
	})

	t.Run("count and equal mode", func(t *testing.T) {
		t.Parallel()
		resp := post(t, srv, `{"length":8,"mode":"equal","alphabets":{"digit":true,"lower":false,"upper":false},"count":5}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[passwordsBody](t, resp)
		require.Len(t, body.Data.Passwords, 5)
		require.Len(t, body.Data.Stats, 5)
		for i, p := range body.Data.Passwords {
			assert.Regexp(t, `^[0-9]{8}$`, p)
			assert.Equal(t, 8, body.Data.Stats[i].Numeric)
		}
	})

	t.Run("template with phonetic and qr", func(t *testing.T) {
		t.Parallel()
		resp := post(t, srv, `{"template":":c.v.c.v.cdd","phonetic":true,"qr":true,"count":2}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[passwordsBody](t, resp)
		shape := regexp.MustCompile(`^[A-Z][a-z]{4}[0-9]{2}$`)
		require.Len(t, body.Data.Passwords, 2)
		require.Len(t, body.Data.Phonetic, 2)
		require.Len(t, body.Data.QR, 2)
		for i, p := range body.Data.Passwords {
			assert.Regexp(t, shape, p)
			assert.Len(t, strings.Fields(body.Data.Phonetic[i]), 7)
			assert.True(t, strings.HasPrefix(body.Data.QR[i], "data:image/png;base64,"))
		}
	})

	t.Run("empty password with qr", func(t *testing.T) {
		t.Parallel()
		resp := post(t, srv, `{"length":0,"qr":true}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[passwordsBody](t, resp)
		assert.Equal(t, []string{""}, body.Data.Passwords)
		assert.Equal(t, []string{""}, body.Data.QR)
		assert.Equal(t, []passgen.Stats{{}}, body.Data.Stats)
	})

	t.Run("custom pool", func(t *testing.T) {
		t.Parallel()
		resp := post(t, srv, `{"custom_pool":"xy","length":10}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[passwordsBody](t, resp)
		assert.Regexp(t, `^[xy]{10}$`, body.Data.Passwords[0])
	})
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"no alphabet", `{"alphabets":{"lower":false,"upper":false,"digit":false,"symbol":false}}`, "no_alphabet"},
		{"syntax", `{"template":"abc-"}`, "syntax_error"},
		{"empty pool", `{"custom_pool":"1Il","filter":{"avoid_similar":true}}`, "empty_pool"},
		{"negative length", `{"length":-1}`, "invalid_length"},
		{"zero count", `{"count":0}`, "invalid_length"},
		{"count too large", `{"count":1001}`, "invalid_length"},
		{"length too large", `{"length":4097}`, "invalid_length"},
		{"huge length", `{"length":2000000000,"count":1000}`, "invalid_length"},
		{"qr capacity exceeded", `{"length":4000,"qr":true}`, "qr_too_large"},
		{"unknown mode", `{"mode":"weighted"}`, "unknown_mode"},
		{"malformed json", `{"length":`, "bad_request"},
		{"unknown field", `{"size":4}`, "bad_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := post(t, srv, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(requestid.Header))
			body := decode[errorBody](t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.WithDefaults(passgen.Request{
		Length:    6,
		Alphabets: passgen.Alphabets{Upper: true},
	}))

	resp := post(t, srv, `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[passwordsBody](t, resp)
	assert.Regexp(t, `^[A-Z]{6}$`, body.Data.Passwords[0])

	resp = post(t, srv, `{"length":3}`)
	body = decode[passwordsBody](t, resp)
	assert.Regexp(t, `^[A-Z]{3}$`, body.Data.Passwords[0])
}

func TestPhonetic(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/v1/phonetic?text=" + "-A-b-3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Text     string `json:"text"`
			Phonetic string `json:"phonetic"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "-A-b-3", body.Data.Text)
	assert.Equal(t, "- ALFA - bravo - 3", body.Data.Phonetic)

	resp, err = http.Get(srv.URL + "/v1/phonetic")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthzAndRouting(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))

	resp, err = http.Get(srv.URL + "/v1/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[errorBody](t, resp).Error.Code)

	resp, err = http.Get(srv.URL + "/v1/passwords")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRequestIDPropagation(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(requestid.Header, "trace-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "trace-123", resp.Header.Get(requestid.Header))
}
