package constants

import "time"

var SessionConfig = struct {
	CookieName string
	CookiePath string
}{
	CookieName: "celestia_session",
	CookiePath: "/",
}

var Messages = struct {
	ReadingUnavailable string
	MissingField       string
}{
	ReadingUnavailable: "The stars are cloudy right now. Please check your connection and try again.",
	MissingField:       "Please fill in your date, time, city and country of birth.",
}

var HTTPConfig = struct {
	ReadHeaderTimeout time.Duration
	// Covers a full model round trip, which can take well over a minute for long narratives.
	WriteTimeout time.Duration
	RequestIDKey string
	HeaderID     string
}{
	ReadHeaderTimeout: 10 * time.Second,
	WriteTimeout:      5 * time.Minute,
	RequestIDKey:      "request_id",
	HeaderID:          "X-Request-Id",
}

var AppInfo = struct {
	Name    string
	Version string
}{
	Name:    "Celestia AI",
	Version: "1.0.0",
}
