package mock

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
)

// Canned NBRB payloads keyed by currency code.
var ratePayloads = map[string]string{
	"USD": `{"Cur_Abbreviation":"USD","Cur_Scale":1,"Cur_OfficialRate":3.25,"Date":"%s"}`,
	"EUR": `{"Cur_Abbreviation":"EUR","Cur_Scale":1,"Cur_OfficialRate":3.50,"Date":"%s"}`,
	"RUB": `{"Cur_Abbreviation":"RUB","Cur_Scale":100,"Cur_OfficialRate":3.60,"Date":"%s"}`,
}

// NewRatesAPI starts a stub exchange rate API mimicking the NBRB response shape.
// The caller owns the returned server and must Close it.
func NewRatesAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(strings.TrimPrefix(r.URL.Path, "/exrates/rates/"))
		payload, ok := ratePayloads[code]
		if !ok {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
			return
		}
		date := r.URL.Query().Get("ondate")
		if date == "" {
			date = "2025-01-01"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, payload, date+"T00:00:00")
	}))
}
