// Package model defines the provider-agnostic abstractions for driving a
// language model with a rendered moment document.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Let agents continue a moment without knowing which vendor serves it
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so the agent layer remains decoupled from vendor SDKs.
package model
