// Package mocks provides centralized mock implementations for testing.
//
// Mocks follow one pattern: optional function fields override behavior,
// default fields supply canned results, and every call is recorded so tests
// can assert how many requests reached the model.
//
//	models := &mocks.MockContentGenerator{Replies: []string{`{"title":"t"}`}}
//	gw := gemini.NewGatewayWithGenerator(logger, models, "gemini-2.5-flash", 0)
//	// ...
//	assert.Equal(t, 1, models.CallCount())
package mocks
