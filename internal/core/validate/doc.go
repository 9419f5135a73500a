// Package validate implements the declarative field validation engine.
//
// A Rule is a named predicate over a single string value plus a failure
// message. Rules are built by parameterized factories (Required, MinLength,
// Email, ...) and evaluated in declaration order by Field and Form. The
// engine is pure and synchronous: a failing rule is reported in the
// Result, never as an error.
package validate
