// Package form turns the pure validation engine into interactive form
// state with change/blur/submit semantics, usable by any front end.
//
// A Form exclusively owns its values, per-field errors, and touched flags.
// The validation schema is supplied as a function of the current values and
// re-evaluated on every validation pass, so rules comparing two live fields
// (confirm-password) never validate against a stale captured value.
package form
