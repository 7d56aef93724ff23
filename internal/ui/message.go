package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/recipebox/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgRecipesFetched MsgKind = iota
	MsgRecipeDeleted
)

type recipesFetched struct {
	recipes []models.Recipe
	err     error
}

type recipeDeleted struct {
	id  int64
	err error
}

// recipesFetchedMsg is the constructor for [MsgRecipesFetched]
func recipesFetchedMsg(recipes []models.Recipe, err error) Msg {
	return Msg{kind: MsgRecipesFetched, data: recipesFetched{recipes, err}}
}

// recipeDeletedMsg is the constructor for [MsgRecipeDeleted]
func recipeDeletedMsg(id int64, err error) Msg {
	return Msg{kind: MsgRecipeDeleted, data: recipeDeleted{id, err}}
}
