// Package gate decides per request whether the identity provider's enforcement runs.
//
// An ordered rule set selects the intercepted routes. For intercepted routes the
// gate reads the resolver status: an active provider gets the request delegated,
// any other status lets the request continue unauthenticated.
package gate
