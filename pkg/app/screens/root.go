package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/session"
)

type Route int

const (
	RouteHome Route = iota
	RouteLogin
	RouteSignup
	RouteAnimeList
	RouteAnimeDetails
	RouteCharacter
	RouteFavorites
	RouteProfile
	RouteSearch
)

// NavigateMsg asks the root screen to show another page. ID identifies
// the resource for detail routes.
type NavigateMsg struct {
	Route Route
	ID    int
}

func Navigate(route Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// SessionChangedMsg carries a session snapshot into the update loop.
type SessionChangedMsg struct {
	Snapshot session.Snapshot
}

// inputCapturer is implemented by screens with a focused text field, so
// root keeps its navigation shortcuts out of the way while typing.
type inputCapturer interface {
	CapturingInput() bool
}

// protected routes require an authenticated session; navigation to them
// lands on the login page instead.
var protected = map[Route]bool{
	RouteFavorites: true,
	RouteProfile:   true,
	RouteSearch:    true,
}

// RootScreen routes between pages, renders the navbar, and applies the
// route guard. It owns the single session store subscription.
type RootScreen struct {
	store  *session.Store
	client *api.Client

	current Route
	active  tea.Model
	updates <-chan session.Snapshot

	width  int
	height int
}

func NewRootScreen(store *session.Store, client *api.Client) *RootScreen {
	r := &RootScreen{
		store:   store,
		client:  client,
		current: RouteHome,
		updates: store.Subscribe(),
	}
	r.active = NewHomeScreen(store)
	return r
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.active.Init(), r.listenSession, r.resolvePending)
}

// resolvePending turns a persisted token into a resolved identity at
// startup. The store self-heals to anonymous if the token is stale.
func (r *RootScreen) resolvePending() tea.Msg {
	if r.store.State() == session.PendingUser {
		r.store.FetchUser(context.Background())
	}
	return nil
}

func (r *RootScreen) listenSession() tea.Msg {
	return SessionChangedMsg{Snapshot: <-r.updates}
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		if cmd, handled := r.handleGlobalKey(msg); handled {
			return r, cmd
		}

	case NavigateMsg:
		return r, r.navigate(msg)

	case SessionChangedMsg:
		var cmd tea.Cmd
		if protected[r.current] && !r.store.IsAuthenticated() {
			cmd = r.navigate(NavigateMsg{Route: RouteLogin})
		}
		return r, tea.Batch(cmd, r.listenSession)
	}

	var cmd tea.Cmd
	r.active, cmd = r.active.Update(msg)
	return r, cmd
}

func (r *RootScreen) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}

	if capturer, ok := r.active.(inputCapturer); ok && capturer.CapturingInput() {
		return nil, false
	}

	switch msg.String() {
	case "q":
		return tea.Quit, true
	case "H":
		return r.navigate(NavigateMsg{Route: RouteHome}), true
	case "A":
		return r.navigate(NavigateMsg{Route: RouteAnimeList}), true
	case "S":
		return r.navigate(NavigateMsg{Route: RouteSearch}), true
	case "F":
		return r.navigate(NavigateMsg{Route: RouteFavorites}), true
	case "P":
		return r.navigate(NavigateMsg{Route: RouteProfile}), true
	case "N":
		return r.navigate(NavigateMsg{Route: RouteSignup}), true
	case "L":
		if r.store.IsAuthenticated() {
			r.store.Logout()
			return r.navigate(NavigateMsg{Route: RouteHome}), true
		}
		return r.navigate(NavigateMsg{Route: RouteLogin}), true
	}
	return nil, false
}

// navigate applies the route guard and mounts the target screen.
func (r *RootScreen) navigate(msg NavigateMsg) tea.Cmd {
	target := msg.Route
	if protected[target] && !r.store.IsAuthenticated() {
		target = RouteLogin
	}

	r.current = target
	switch target {
	case RouteLogin:
		r.active = NewLoginScreen(r.store, r.client)
	case RouteSignup:
		r.active = NewSignupScreen(r.store)
	case RouteAnimeList:
		r.active = NewAnimeListScreen(r.client)
	case RouteAnimeDetails:
		r.active = NewAnimeDetailsScreen(r.store, r.client, msg.ID)
	case RouteCharacter:
		r.active = NewCharacterScreen(r.client, msg.ID)
	case RouteFavorites:
		r.active = NewFavoritesScreen(r.store, r.client)
	case RouteProfile:
		r.active = NewProfileScreen(r.store, r.client)
	case RouteSearch:
		r.active = NewSearchScreen(r.client)
	default:
		r.active = NewHomeScreen(r.store)
	}

	var size tea.Cmd
	if r.width > 0 {
		size = func() tea.Msg { return tea.WindowSizeMsg{Width: r.width, Height: r.height} }
	}
	return tea.Batch(r.active.Init(), size)
}

// Route reports the currently mounted page.
func (r *RootScreen) Route() Route {
	return r.current
}

func (r *RootScreen) View() string {
	return fmt.Sprintf("%s\n\n%s", r.renderNavbar(), r.active.View())
}

func (r *RootScreen) renderNavbar() string {
	brand := styles.TitleStyle.MarginBottom(0).Render("AnimeTracker")

	entry := func(label string, route Route) string {
		if r.current == route {
			return styles.ActiveNavStyle.Render(label)
		}
		return styles.InactiveNavStyle.Render(label)
	}

	items := []string{
		brand,
		entry("[H]ome", RouteHome),
		entry("[A]nime", RouteAnimeList),
	}

	// One snapshot for the whole render; the store can change between
	// two separate reads while a command goroutine resolves.
	if snapshot := r.store.Snapshot(); snapshot.User != nil {
		items = append(items,
			entry("[S]earch", RouteSearch),
			entry("[F]avorites", RouteFavorites),
			entry("[P]rofile", RouteProfile),
			styles.MutedStyle.Render(fmt.Sprintf("  %s • [L]ogout", snapshot.User.Username)),
		)
	} else {
		items = append(items,
			entry("[L]ogin", RouteLogin),
			entry("Sig[N]up", RouteSignup),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
