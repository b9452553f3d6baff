package ai

import (
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Failure classes the retry policy distinguishes. Classification is by
// message text because the SDK surfaces upstream errors as flat strings.
type failureKind int

const (
	failOther failureKind = iota
	failModelUnavailable
	failQuotaRate
	failQuotaDaily
	failNetwork
)

// ErrBlocked is returned by generate while the circuit breaker window is
// open. No transport attempt is made.
var ErrBlocked = errors.New("ai: temporarily blocked after repeated failures")

var errModelsExhausted = errors.New("ai: all candidate models unavailable")

var errEmptyResponse = errors.New("ai: model returned an empty response")

func classify(err error) failureKind {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return failNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	// a per-day limit cannot clear within the request lifetime
	case strings.Contains(msg, "per day") || strings.Contains(msg, "perday") || strings.Contains(msg, "daily limit"):
		return failQuotaDaily
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "resource_exhausted"):
		return failQuotaRate
	case strings.Contains(msg, "failed to fetch") || strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "connection refused") || strings.Contains(msg, "network is unreachable"):
		return failNetwork
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found") ||
		strings.Contains(msg, "is not supported") || strings.Contains(msg, "unsupported model") ||
		strings.Contains(msg, "model is unavailable"):
		return failModelUnavailable
	}
	return failOther
}

var (
	retryInPattern    = regexp.MustCompile(`(?i)retry in (\d+(?:\.\d+)?)\s*s`)
	retryDelayPattern = regexp.MustCompile(`(?i)retrydelay[^0-9]*(\d+(?:\.\d+)?)s`)
)

// retryHint extracts a server-suggested wait ("retry in 21s" or a
// retryDelay field echoed into the message) from a quota error.
func retryHint(err error) (time.Duration, bool) {
	msg := err.Error()
	m := retryInPattern.FindStringSubmatch(msg)
	if m == nil {
		m = retryDelayPattern.FindStringSubmatch(msg)
	}
	if m == nil {
		return 0, false
	}
	secs, perr := strconv.ParseFloat(m[1], 64)
	if perr != nil || secs <= 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}
