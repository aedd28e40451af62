// Package handler provides HTTP request handlers for the Arena bot.
//
// The bot exposes a small surface: a health probe and the interactions
// endpoint that receives slash-command payloads from the chat platform.
// The interaction handler decodes the payload, dispatches it through the
// command registry, and writes the resulting message back as JSON.
package handler
