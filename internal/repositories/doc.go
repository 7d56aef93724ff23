// Package repositories implements SQLite persistence for recipes.
//
// [RecipeRepository] satisfies [models.RecipeStore]. Every operation is a single SQL statement,
// so no multi-record transactions are needed.
//
// Ids come from an AUTOINCREMENT primary key: they are assigned on insert, increase monotonically,
// and are never reused after a delete. Deletes are hard deletes.
package repositories
