package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/recipebox/internal/formatter"
	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	DetailView
	ConfirmView
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	svc      services.RecipeService
	width    int
	height   int
	list     list.Model
	recipes  []models.Recipe
	selected *models.Recipe
	loading  bool
	status   string
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model backed by the provided recipe service.
func NewModel(ctx context.Context, svc services.RecipeService) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Recipes"
	l.SetShowHelp(false)

	return &Model{
		ctx:     ctx,
		view:    ListView,
		svc:     svc,
		list:    l,
		loading: true,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by fetching the recipe catalog.
func (m *Model) Init() tea.Cmd {
	return m.fetchRecipes()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgRecipesFetched:
		data := msg.data.(recipesFetched)
		m.loading = false
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.err = nil
		m.recipes = data.recipes
		return m, m.list.SetItems(recipeItems(data.recipes))

	case MsgRecipeDeleted:
		data := msg.data.(recipeDeleted)
		if data.err != nil {
			m.loading = false
			m.err = data.err
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted recipe #%d", data.id)
		m.loading = true
		return m, m.fetchRecipes()
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case DetailView:
		return m.renderDetail()
	case ConfirmView:
		return m.renderConfirm()
	default:
		return m.renderList()
	}
}

// Selected returns the recipe highlighted in the list, if any.
func (m *Model) Selected() *models.Recipe {
	if item, ok := m.list.SelectedItem().(recipeItem); ok {
		r := item.recipe
		return &r
	}
	return nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.refresh):
		m.err = nil
		m.status = ""
		m.loading = true
		return m, m.fetchRecipes()
	case key.Matches(msg, m.keys.open):
		if r := m.Selected(); r != nil {
			m.selected = r
			m.view = DetailView
		}
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if r := m.Selected(); r != nil {
			m.selected = r
			m.view = ConfirmView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ListView
		m.selected = nil
	case key.Matches(msg, m.keys.remove):
		m.view = ConfirmView
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		id := m.selected.ID
		m.view = ListView
		m.selected = nil
		m.loading = true
		return m, m.deleteRecipe(id)
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.quit):
		m.view = ListView
		m.selected = nil
	}
	return m, nil
}

func (m *Model) resizeList() {
	w, h := m.width-4, m.height-6
	if w < 0 || h < 0 {
		return
	}
	m.list.SetSize(w, h)
}

func (m *Model) fetchRecipes() tea.Cmd {
	return func() tea.Msg {
		recipes, err := m.svc.List(m.ctx)
		return recipesFetchedMsg(recipes, err)
	}
}

func (m *Model) deleteRecipe(id int64) tea.Cmd {
	return func() tea.Msg {
		return recipeDeletedMsg(id, m.svc.Delete(m.ctx, id))
	}
}

func (m *Model) renderList() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.recipes) == 0:
		b.WriteString(styles.muted.Render("Loading recipes..."))
	case len(m.recipes) == 0 && m.err == nil:
		b.WriteString(styles.title.Render("Recipes"))
		b.WriteString("\nNo recipes yet.")
	default:
		b.WriteString(m.list.View())
	}

	if m.err != nil {
		b.WriteString("\n\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.status != "" {
		b.WriteString("\n\n" + styles.ok.Render(m.status))
	}

	b.WriteString("\n\n" + m.help.ShortHelpView(m.keys.listHelp()))
	return b.String()
}

func (m *Model) renderDetail() string {
	r := m.selected
	if r == nil {
		return m.renderList()
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("#%d %s", r.ID, r.Title)))
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(r.Description + "\n\n")
	}
	b.WriteString(styles.servings(r.Servings) + "\n")
	if r.ImageURL != "" {
		fmt.Fprintf(&b, "%s %s\n", styles.label.Render("Image:"), r.ImageURL)
	}

	b.WriteString("\n" + styles.label.Render("Ingredients") + "\n")
	for _, item := range formatter.SplitIngredients(r.Ingredients) {
		fmt.Fprintf(&b, "  %s %s\n", styles.bullet.Render("•"), item)
	}

	b.WriteString("\n" + styles.label.Render("Instructions") + "\n")
	b.WriteString(r.Instructions + "\n")

	b.WriteString("\n" + m.help.ShortHelpView(m.keys.detailHelp()))
	return b.String()
}

func (m *Model) renderConfirm() string {
	title := styles.warn.Render(fmt.Sprintf("Delete '%s' (#%d)?", m.selected.Title, m.selected.ID))
	info := "\nThis cannot be undone.\n"

	return fmt.Sprintf("%s\n%s\n%s", title, info, m.help.ShortHelpView(m.keys.confirmHelp()))
}
