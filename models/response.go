package models

// ProxyResponse is the body returned by GET /api/proxy. Clients decode both
// outcomes into it.
//
// On success Data holds the upstream body verbatim. On failure Error holds a
// short message, Status the upstream status when one was received, and
// Details the underlying cause when there is one.
type ProxyResponse struct {
	Success    bool   `json:"success"`
	Data       string `json:"data,omitempty"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
	Error      string `json:"error,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Details    string `json:"details,omitempty"`
}

// ProxySuccess is the success body written by the relay. Data is always
// present, even when the upstream body was empty.
type ProxySuccess struct {
	Success    bool   `json:"success"`
	Data       string `json:"data"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime,omitempty"`
}
