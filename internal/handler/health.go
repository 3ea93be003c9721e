package handler

import "net/http"

// HandleHealthz responds 200 with a small JSON body indicating the server
// is up.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
