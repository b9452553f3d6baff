package ai

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want failureKind
	}{
		{"rate limit 429", errors.New("googleapi: Error 429: rate limit exceeded"), failQuotaRate},
		{"quota word", errors.New("quota exceeded for this project"), failQuotaRate},
		{"resource exhausted", errors.New("rpc error: RESOURCE_EXHAUSTED"), failQuotaRate},
		{"daily beats rate", errors.New("429: quota exceeded for requests per day"), failQuotaDaily},
		{"daily limit phrase", errors.New("you have hit your daily limit"), failQuotaDaily},
		{"model 404", errors.New("404: model gemini-x is not found"), failModelUnavailable},
		{"model unsupported", errors.New("this model is not supported for generateContent"), failModelUnavailable},
		{"fetch failure", errors.New("failed to fetch"), failNetwork},
		{"dns failure", errors.New("lookup api.example.com: no such host"), failNetwork},
		{"net.Error type", &net.DNSError{Err: "timeout", IsTimeout: true}, failNetwork},
		{"anything else", errors.New("500 internal server error"), failOther},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, classify(c.err))
		})
	}
}

func TestRetryHint(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want time.Duration
		ok   bool
	}{
		{"retry in", errors.New("429: please retry in 21s"), 21 * time.Second, true},
		{"retry in fractional", errors.New("Retry in 2.5s"), 2500 * time.Millisecond, true},
		{"retryDelay field", errors.New(`{"retryDelay": "14s"}`), 14 * time.Second, true},
		{"no hint", errors.New("429 rate limit"), 0, false},
		{"zero is no hint", errors.New("retry in 0s"), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, ok := retryHint(c.err)
			assert.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.want, d)
			}
		})
	}
}
