// Package tokens locates the token directory for a product inside a token
// tree.
//
// The search is top-down: every subdirectory of a level is compared with the
// product name (case-folded) before any of them is descended into. The first
// directory whose name matches wins provided its subtree holds at least one
// file. Resolvers read through an fs.FS so tests can run against in-memory
// trees.
package tokens
