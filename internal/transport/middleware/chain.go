package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered middleware list. The first entry is the outermost.
type Stack []Middleware

// Use returns the stack extended with mws.
func (s Stack) Use(mws ...Middleware) Stack {
	return append(s[:len(s):len(s)], mws...)
}

// Then wraps h with every middleware in the stack.
func (s Stack) Then(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}
