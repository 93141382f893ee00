package paysdk

import "time"

// ThreeDSDeviceInfo is the browser/device fingerprint posted to start the
// 3-D Secure method phase. The gateway forwards it to the card network's
// access control server; the SDK never interprets the response.
type ThreeDSDeviceInfo struct {
	ColorDepth        int    `json:"colorDepth"`
	JavaEnabled       bool   `json:"javaEnabled"`
	JavascriptEnabled bool   `json:"javascriptEnabled"`
	Language          string `json:"language"`
	ScreenHeight      int    `json:"screenHeight"`
	ScreenWidth       int    `json:"screenWidth"`
	// Timezone is the offset in minutes behind UTC, matching the browser
	// Date.getTimezoneOffset convention.
	Timezone  int    `json:"timezone"`
	UserAgent string `json:"userAgent"`
}

// defaultDeviceInfo describes the SDK host itself. Integrations that embed
// a real browser view should supply the actual values via [WithDeviceInfo].
func defaultDeviceInfo() ThreeDSDeviceInfo {
	_, offset := time.Now().Zone()
	return ThreeDSDeviceInfo{
		ColorDepth:        24,
		JavascriptEnabled: true,
		Language:          "en-US",
		ScreenHeight:      1080,
		ScreenWidth:       1920,
		Timezone:          -offset / 60,
		UserAgent:         userAgent,
	}
}

// ThreeDSCheck exposes the challenge state for an embedded browser view.
// Active is true only while the gateway is waiting on the cardholder to
// complete the challenge at URL.
type ThreeDSCheck struct {
	Active bool
	URL    string
}
