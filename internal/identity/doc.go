// Package identity resolves the optional identity provider once per process and
// exposes it through a single Provider capability.
//
// A Resolver runs the provider loader on its first call. A provider that is not
// configured leaves the process in pass-through mode without any log output, a
// provider that fails to construct is logged once at warn level and degrades the
// same way. Both outcomes are permanent for the life of the process.
package identity
