package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// bodyValues extracts the fields of a POST body as flat text values.
//
// The upstream service (and the freeCodeCamp checker that exercises it) sends
// application/x-www-form-urlencoded bodies, but JSON is what every other
// client reaches for, so both are accepted. Everything is surfaced as text —
// the service layer owns the lenient number/date parsing, and it parses from
// strings regardless of which encoding the bytes arrived in.
func bodyValues(r *http.Request) (url.Values, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber() // keep numbers as text instead of float64
		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return nil, err
		}

		values := make(url.Values, len(fields))
		for key, val := range fields {
			switch v := val.(type) {
			case string:
				values.Set(key, v)
			case json.Number:
				values.Set(key, v.String())
			case bool:
				values.Set(key, strconv.FormatBool(v))
			case nil:
				// absent — leave unset
			}
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}
