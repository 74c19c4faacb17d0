// Package main provides the entry point of the DesignSpec Ltd web service.
// It serves the marketing site, the public quote, appointment and contact
// forms and the role dashboards using the Fiber framework. Access to the
// dashboards goes through a session gate in front of a pluggable identity
// provider (OpenID Connect or local accounts); without a provider the site
// runs in an explicit pass-through mode. Data is persisted with gorm.
package main
