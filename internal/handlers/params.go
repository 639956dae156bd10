package handlers

import (
	"net/http"
	"strconv"
)

// pathID parses a numeric path parameter from the route pattern
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
