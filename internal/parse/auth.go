package parse

import (
	"regexp"
	"strings"
)

// AuthErrorCode classifies why the CLI refused to report usage.
type AuthErrorCode string

const (
	AuthErrorNotLoggedIn    AuthErrorCode = "not_logged_in"
	AuthErrorTokenExpired   AuthErrorCode = "token_expired"
	AuthErrorNoSubscription AuthErrorCode = "no_subscription"
	AuthErrorSetupRequired  AuthErrorCode = "setup_required"
)

// AuthError describes an authentication problem detected in CLI output.
type AuthError struct {
	Code    AuthErrorCode
	Message string
}

var (
	tokenExpiredPattern = regexp.MustCompile(`(?i)(?:token|session)\s+(?:has\s+)?expired`)
	notLoggedInPattern  = regexp.MustCompile(`(?i)authentication[_\s](?:error|failed)|not logged in|please log in|login required|sign in to continue`)
	authURLPattern      = regexp.MustCompile(`(?i)https?://\S*(?:/login|/auth)`)
	noSubPattern        = regexp.MustCompile(`(?i)free tier|no active subscription|upgrade to pro`)
)

// DetectAuthError inspects captured output for signs that the CLI is not
// authenticated or not set up. Returns nil when the output looks like a
// normal session.
func DetectAuthError(text string) *AuthError {
	if text == "" {
		return nil
	}
	clean := StripANSI(text)
	lower := strings.ToLower(clean)

	if tokenExpiredPattern.MatchString(clean) {
		return &AuthError{
			Code:    AuthErrorTokenExpired,
			Message: "Claude session token has expired; run claude and log in again",
		}
	}
	if notLoggedInPattern.MatchString(clean) || authURLPattern.MatchString(clean) {
		return &AuthError{
			Code:    AuthErrorNotLoggedIn,
			Message: "not logged in to Claude; run claude and authenticate",
		}
	}
	if noSubPattern.MatchString(clean) {
		return &AuthError{
			Code:    AuthErrorNoSubscription,
			Message: "no active Claude subscription; usage metrics need Pro or Max",
		}
	}
	// First-run setup wizard: the CLI asks for a theme before anything else.
	if strings.Contains(lower, "let's get started") ||
		(strings.Contains(lower, "choose the text style") && strings.Contains(lower, "terminal")) ||
		strings.Contains(lower, "run /theme") {
		return &AuthError{
			Code:    AuthErrorSetupRequired,
			Message: "claude has not completed first-run setup; run it once interactively",
		}
	}
	return nil
}
