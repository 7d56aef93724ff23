package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/recipebox/internal/models"
)

var (
	_ list.Item = recipeItem{}
)

// recipeItem wraps [models.Recipe] to implement [list.Item].
type recipeItem struct {
	recipe models.Recipe
}

func (i recipeItem) FilterValue() string { return i.recipe.Title }
func (i recipeItem) Title() string       { return fmt.Sprintf("#%d %s", i.recipe.ID, i.recipe.Title) }
func (i recipeItem) Description() string {
	desc := fmt.Sprintf("serves %d", i.recipe.Servings)
	if i.recipe.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.recipe.Description)
	}
	return desc
}

func recipeItems(recipes []models.Recipe) []list.Item {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		items[i] = recipeItem{recipe: r}
	}
	return items
}
