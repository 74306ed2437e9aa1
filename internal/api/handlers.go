package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/passgen/pkg/config"
	"github.com/dmitrymomot/passgen/pkg/logger"
	"github.com/dmitrymomot/passgen/pkg/passgen"
	"github.com/dmitrymomot/passgen/pkg/phonetic"
	"github.com/dmitrymomot/passgen/pkg/qrcode"
)

type generateRequest struct {
	passgen.Request
	Count int  `json:"count"`
	QR    bool `json:"qr"`
}

type generateResponse struct {
	Passwords []string        `json:"passwords"`
	Phonetic  []string        `json:"phonetic,omitempty"`
	QR        []string        `json:"qr,omitempty"`
	Stats     []passgen.Stats `json:"stats"`
}

type phoneticResponse struct {
	Text     string `json:"text"`
	Phonetic string `json:"phonetic"`
}

func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	in := generateRequest{Request: a.defaults, Count: 1}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		a.fail(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	if in.Count < 1 || in.Count > config.MaxCount {
		a.fail(w, r, fmt.Errorf("%w: count %d not in 1..%d", passgen.ErrInvalidLength, in.Count, config.MaxCount))
		return
	}
	if in.Length > config.MaxLength {
		a.fail(w, r, fmt.Errorf("%w: length %d exceeds %d", passgen.ErrInvalidLength, in.Length, config.MaxLength))
		return
	}

	out := generateResponse{
		Passwords: make([]string, 0, in.Count),
		Stats:     make([]passgen.Stats, 0, in.Count),
	}
	for range in.Count {
		res, err := a.gen.Generate(r.Context(), in.Request)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		out.Passwords = append(out.Passwords, res.Password)
		out.Stats = append(out.Stats, res.Stats)
		if in.Phonetic {
			out.Phonetic = append(out.Phonetic, res.Phonetic)
		}
		if in.QR {
			uri, err := a.qrURI(res.Password)
			if err != nil {
				a.fail(w, r, err)
				return
			}
			out.QR = append(out.QR, uri)
		}
	}

	a.log.InfoContext(r.Context(), "passwords generated",
		logger.Mode(in.Kind()),
		logger.Count(in.Count),
	)
	a.ok(w, out)
}

func (a *API) phonetic(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		a.fail(w, r, fmt.Errorf("%w: text query parameter is required", errBadRequest))
		return
	}
	a.ok(w, phoneticResponse{Text: text, Phonetic: phonetic.Encode(text)})
}

// qrURI renders password as a data URI. An empty password has nothing to
// encode and yields an empty entry, keeping qr aligned with passwords.
func (a *API) qrURI(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	return qrcode.DataURI(password, a.qrSize)
}
