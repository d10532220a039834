// Package menu defines the menu item model: sparse user-supplied
// definitions, the tagged entry variants they are made of, and
// normalization into fully-populated items.
package menu
