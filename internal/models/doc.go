// Package models defines the recipe entity and the persistence interface for the recipebox service.
//
//   - [Recipe] : a stored recipe, its integer id plus the mutable [Fields]
//   - [Fields] : the six values a client supplies on create and update
//   - [RecipeStore] : CRUD operations implemented by the SQLite repository
//
// JSON encoding of [Recipe] follows a fixed field order:
// id, title, ingredients, instructions, servings, description, image_url.
package models
