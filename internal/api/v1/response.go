package v1

// TrackResponse confirms an analytics ping. Ts carries the caller's raw query
// value unchanged (a JSON string) when the caller sent one; when the caller
// omitted it the server substitutes epoch milliseconds (a JSON number).
type TrackResponse struct {
	Status     string `json:"status"`
	Ts         any    `json:"ts"`
	ReceivedAt string `json:"received_at"`
	Message    string `json:"message"`
}
