package api

import "net/http"

// actorHeader names the caller for audit columns. There is no
// authentication layer; the header is taken at face value.
const actorHeader = "X-Actor"

const defaultActor = "anonymous"

func actorFrom(r *http.Request) string {
	if actor := r.Header.Get(actorHeader); actor != "" {
		return actor
	}
	return defaultActor
}
