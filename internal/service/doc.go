// Package service implements business logic for the Arena bot.
//
// Services sit between the command solvers and the repositories: they own
// the domain rules (name limits, point ranges, current-tournament
// resolution) and depend on storage through interfaces declared here, so
// tests can substitute function-field mocks.
package service
