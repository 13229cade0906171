package view

import (
	"fmt"
	"strings"
)

// FetchErrorPolicy decides what a screen shows after its fetch fails.
type FetchErrorPolicy int

const (
	// FetchErrorPolicyShow shows the error class and offers a retry.
	FetchErrorPolicyShow FetchErrorPolicy = iota

	// FetchErrorPolicyStall logs the error and leaves the screen as it was:
	// the list stays empty and the detail screen keeps loading.
	FetchErrorPolicyStall
)

func (p FetchErrorPolicy) String() string {
	switch p {
	case FetchErrorPolicyStall:
		return "stall"
	default:
		return "show"
	}
}

// ParseFetchErrorPolicy parses "show" or "stall".
func ParseFetchErrorPolicy(raw string) (FetchErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "show":
		return FetchErrorPolicyShow, nil
	case "stall":
		return FetchErrorPolicyStall, nil
	default:
		return FetchErrorPolicyShow, fmt.Errorf("unknown fetch error policy %q", raw)
	}
}
