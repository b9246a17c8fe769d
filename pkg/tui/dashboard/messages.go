package dashboard

import (
	"tableflip.dev/eventscout/pkg/api"
)

// Fetch results carry the generation captured when the request was issued.
// Update drops any result whose generation is no longer current, so the most
// recently requested snapshot always wins and two snapshots never mix.

type eventsLoadedMsg struct {
	gen    int
	events []api.EventRecord
	page   api.Pagination
}

type statsLoadedMsg struct {
	gen   int
	stats *api.Stats
}

type fetchFailedMsg struct {
	gen   int
	scope string
	err   error
}

type importDoneMsg struct {
	id  string
	err error
}

// sessionChangedMsg reports that the stored token changed on disk, which
// means another terminal signed in or out.
type sessionChangedMsg struct{}
