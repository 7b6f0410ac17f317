package service

// Identity is the resolved caller identity for a request. Both acceptance
// mechanisms, the cookie session and the bearer token, resolve to this one
// value; mutation paths never see which channel produced it.
type Identity struct {
	Username string `json:"username"`
}
