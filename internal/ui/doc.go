// Package ui implements an interactive recipe browser using bubbletea's Elm architecture.
//
// The TUI talks to a running recipe API through [services.RecipeService] and has three views:
//  1. [ListView] : Browse recipes in id order, filter by title
//  2. [DetailView] : Read a recipe's ingredients and instructions
//  3. [ConfirmView] : Confirm deleting the selected recipe
//
// The (view) [Model] implements the standard Init/Update/View pattern, receiving results of API calls as [Msg] values.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, d, y/n, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
