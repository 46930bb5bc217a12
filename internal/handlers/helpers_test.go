package handlers_test

import (
	"encoding/json"
	"net/http"
)

func decodeBody(res *http.Response, out interface{}) error {
	return json.NewDecoder(res.Body).Decode(out)
}
