// Package gemini implements the generation.Generator interface using
// Google's Gemini API. The response extraction routine is a pure
// function, testable without any network call.
package gemini
