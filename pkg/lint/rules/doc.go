// Package rules contains the built-in lint rules and collections.
//
// Rules:
//   - deprecated-doctype: legacy doctype declarations (fixable)
//   - void-element-trailing-slash: "/>" on void elements (fixable)
//   - dom-module-invalid-attrs: name or is attributes on <dom-module> (fixable)
//   - no-duplicate-ids: repeated id values within one document
//
// Collections:
//   - html-style: deprecated-doctype, void-element-trailing-slash
//   - recommended: html-style plus dom-module-invalid-attrs and
//     no-duplicate-ids
//
// Nothing here registers itself. Call Builtin with an explicit
// registry; rules are registered before the collections that name them.
package rules
