package param

import (
	"net/http"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// Binding decode the url query into v
func Binding(r *http.Request, v interface{}) error {
	return decoder.Decode(v, r.URL.Query())
}
