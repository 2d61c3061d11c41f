package server

import "errors"

// errNoServersAreCreated is returned when no listen address is configured
// and therefore no transport server can be constructed.
var errNoServersAreCreated = errors.New("no servers are created")
