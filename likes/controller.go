// Package likes toggles a project's liked status optimistically: the local
// liked-id set changes first, the remote counter follows, and a failed
// remote update restores the set.
package likes

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"projectvault/logging"
	"projectvault/models"
)

const failureMessage = "Failed to update project. Please try again."

type State string

const (
	StatePending    State = "pending"
	StateConfirmed  State = "confirmed"
	StateRolledBack State = "rolled-back"
	// StateFailed means the toggle never took effect locally, so there was
	// nothing to roll back.
	StateFailed State = "failed"
)

type Kind string

const (
	KindLike   Kind = "like"
	KindUnlike Kind = "unlike"
	KindError  Kind = "error"
)

// Notification is a transient user-facing message.
type Notification struct {
	Kind    Kind   `json:"type"`
	Message string `json:"message"`
}

type LikedSet interface {
	IDs(ctx context.Context) ([]string, error)
	Replace(ctx context.Context, ids []string) error
}

type CounterUpdater interface {
	UpdateLikesCount(ctx context.Context, id string, increment bool) (*models.Project, error)
}

// Refetcher reloads whatever list shows like counts.
type Refetcher interface {
	Refetch(ctx context.Context)
}

type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a func to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type Result struct {
	ProjectID string `json:"project_id"`
	Liked     bool   `json:"liked"`
	State     State  `json:"state"`
	Err       error  `json:"-"`
}

type Controller struct {
	liked    LikedSet
	counter  CounterUpdater
	list     Refetcher
	notifier Notifier

	mu     sync.Mutex
	states map[string]State
}

func NewController(liked LikedSet, counter CounterUpdater, list Refetcher, notifier Notifier) *Controller {
	return &Controller{
		liked:    liked,
		counter:  counter,
		list:     list,
		notifier: notifier,
		states:   map[string]State{},
	}
}

// Toggle flips the liked status of projectID. title is only used in the
// notification text. Two toggles of the same project are not serialized.
func (c *Controller) Toggle(ctx context.Context, projectID, title string) Result {
	log := logging.Ctx(ctx).With().Str("project_id", projectID).Logger()

	before, err := c.liked.IDs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read liked projects")
		c.notifier.Notify(Notification{Kind: KindError, Message: failureMessage})
		return Result{ProjectID: projectID, State: StateFailed, Err: err}
	}
	liked := !slices.Contains(before, projectID)

	c.setState(projectID, StatePending)
	if err := c.liked.Replace(ctx, withMembership(before, projectID, liked)); err != nil {
		log.Error().Err(err).Msg("Failed to persist liked projects")
		return c.fail(projectID, StateFailed, !liked, err)
	}

	if _, err := c.counter.UpdateLikesCount(ctx, projectID, liked); err != nil {
		log.Warn().Err(err).Bool("liked", liked).Msg("Like update failed, rolling back")
		if rbErr := c.liked.Replace(ctx, before); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to restore liked projects")
		}
		return c.fail(projectID, StateRolledBack, !liked, err)
	}

	c.list.Refetch(ctx)
	c.setState(projectID, StateConfirmed)

	if liked {
		c.notifier.Notify(Notification{Kind: KindLike, Message: fmt.Sprintf("Added \"%s\" to liked projects", title)})
	} else {
		c.notifier.Notify(Notification{Kind: KindUnlike, Message: fmt.Sprintf("Removed \"%s\" from liked projects", title)})
	}
	return Result{ProjectID: projectID, Liked: liked, State: StateConfirmed}
}

// State reports the last toggle outcome of projectID, or "" if no toggle
// of it got past reading the liked set.
func (c *Controller) State(projectID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[projectID]
}

func (c *Controller) fail(projectID string, state State, liked bool, err error) Result {
	c.setState(projectID, state)
	c.notifier.Notify(Notification{Kind: KindError, Message: failureMessage})
	return Result{ProjectID: projectID, Liked: liked, State: state, Err: err}
}

func (c *Controller) setState(projectID string, s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[projectID] = s
}

func withMembership(ids []string, id string, member bool) []string {
	if member {
		return append(slices.Clone(ids), id)
	}
	return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
}
