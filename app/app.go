// Package app wires the preference store, gateway, fetch hooks, like
// controller and toast slot into the single application state that the
// HTTP handlers render.
package app

import (
	"context"
	"slices"
	"time"

	"projectvault/gateway"
	"projectvault/hooks"
	"projectvault/likes"
	"projectvault/logging"
	"projectvault/models"
	"projectvault/preferences"
)

type Tab string

const (
	TabAll   Tab = "all"
	TabLiked Tab = "liked"
)

// ParseTab maps anything other than "liked" to TabAll.
func ParseTab(s string) Tab {
	if Tab(s) == TabLiked {
		return TabLiked
	}
	return TabAll
}

// App is the page state of one browsing device: one preference store, one
// project list, one toast. Concurrent requests share it.
type App struct {
	Prefs      *preferences.Preferences
	Gateway    *gateway.Gateway
	Projects   *hooks.Projects
	Categories *hooks.Categories
	Years      *hooks.Years
	Search     *hooks.Search
	Ratings    *hooks.Ratings
	Likes      *likes.Controller

	toast *toastSlot
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the time source for toasts and likes_count timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New(store gateway.Store, prefStore preferences.Store, opts ...Option) *App {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	prefs := preferences.New(prefStore)
	gw := gateway.New(store, prefs.Session, gateway.WithClock(o.now))

	a := &App{
		Prefs:      prefs,
		Gateway:    gw,
		Projects:   hooks.NewProjects(gw),
		Categories: hooks.NewCategories(gw),
		Years:      hooks.NewYears(gw),
		Search:     hooks.NewSearch(gw),
		Ratings:    hooks.NewRatings(gw),
		toast:      &toastSlot{now: o.now},
	}
	a.Likes = likes.NewController(prefs.Liked, gw, a.Projects, a.toast)
	return a
}

// ProjectList applies filters and returns the list for tab. The liked tab
// narrows the fetched list to liked ids. The response echoes the filters
// the projects were fetched with, which may differ from filters when
// requests overlap. The string result is the hook's fetch error text,
// empty after a successful fetch.
func (a *App) ProjectList(ctx context.Context, filters models.ProjectFilters, tab Tab) (models.ProjectsResponse, string) {
	a.Projects.SetFilters(ctx, filters)
	state, shown := a.Projects.Snapshot()

	liked, err := a.Prefs.Liked.IDs(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to read liked projects")
	}

	projects := state.Data
	if tab == TabLiked {
		projects = slices.DeleteFunc(slices.Clone(projects), func(p models.Project) bool {
			return !slices.Contains(liked, p.ID)
		})
	}

	return models.ProjectsResponse{
		Projects:   projects,
		Total:      len(projects),
		Loading:    state.Loading,
		Tab:        string(tab),
		LikedCount: len(liked),
		Filters:    shown,
	}, state.Error
}

// ToggleLike flips the liked status of projectID. The notification title
// comes from the current list, falling back to a lookup.
func (a *App) ToggleLike(ctx context.Context, projectID string) likes.Result {
	return a.Likes.Toggle(ctx, projectID, a.projectTitle(ctx, projectID))
}

func (a *App) projectTitle(ctx context.Context, projectID string) string {
	for _, p := range a.Projects.State().Data {
		if p.ID == projectID {
			return p.Title
		}
	}
	if p, err := a.Gateway.GetProjectByID(ctx, projectID); err == nil {
		return p.Title
	}
	return projectID
}

// UserRating loads this session's rating of projectID.
func (a *App) UserRating(ctx context.Context, projectID string) hooks.RatingState {
	r := a.Ratings.For(projectID)
	r.Load(ctx)
	return r.State()
}

// RateProject rates projectID and, on success, refetches the list so the
// new average shows.
func (a *App) RateProject(ctx context.Context, projectID string, rating int) (hooks.RatingState, error) {
	r := a.Ratings.For(projectID)
	if err := r.Rate(ctx, rating); err != nil {
		return r.State(), err
	}
	a.Projects.Refetch(ctx)
	return r.State(), nil
}

func (a *App) Preferences(ctx context.Context) (models.PreferencesResponse, error) {
	dark, err := a.Prefs.DarkMode.Get(ctx)
	if err != nil {
		return models.PreferencesResponse{}, err
	}
	liked, err := a.Prefs.Liked.IDs(ctx)
	if err != nil {
		return models.PreferencesResponse{}, err
	}
	return models.PreferencesResponse{DarkMode: dark, Liked: liked}, nil
}

func (a *App) SetDarkMode(ctx context.Context, dark bool) error {
	return a.Prefs.DarkMode.Set(ctx, dark)
}

// Toast returns the visible notification, if any.
func (a *App) Toast() (likes.Notification, bool) {
	return a.toast.Current()
}

func (a *App) DismissToast() {
	a.toast.Dismiss()
}
