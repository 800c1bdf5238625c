package response_models

// RelayResponse reports the outcome of forwarding a submission to the
// external lead store. Both upstream fields are always emitted on a forwarded
// response, even when the webhook answered with an empty body.
type RelayResponse struct {
	OK             bool   `json:"ok"`
	UpstreamStatus int    `json:"upstreamStatus"`
	UpstreamBody   string `json:"upstreamBody"`

	// Honeypot marks a trapped submission that never reached the webhook;
	// the controller answers those with HoneypotAck instead.
	Honeypot bool `json:"-"`
}

// HoneypotAck is the bare acknowledgement for trapped submissions: no
// upstream fields because no outbound call was made.
type HoneypotAck struct {
	OK bool `json:"ok"`
}
