package agenda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avezhov/duebot/internal/todoist"
)

// ErrEmptyInbox indicates the inbox project contained no tasks at startup,
// so the user's identity could not be resolved. There is no fallback path;
// this is a fatal startup condition.
var ErrEmptyInbox = errors.New("agenda: inbox project has no tasks")

// ErrNoInboxProject indicates the backend returned no project flagged as
// the inbox.
var ErrNoInboxProject = errors.New("agenda: no inbox project found")

// Repository resolves the project list and the user's own identity once at
// startup and fetches the user's owned tasks across all projects on demand.
// All fields after Init are read-only, so concurrent readers are safe.
type Repository struct {
	client *todoist.Client
	logger *slog.Logger

	projects []todoist.Project
	ids      map[string]string // project name -> ID
	inboxID  string
	selfID   string
}

// NewRepository creates a Repository backed by the given Todoist client.
// Init must be called before any other method.
func NewRepository(client *todoist.Client, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		client: client,
		logger: logger.With("component", "repository"),
	}
}

// Init fetches all projects, builds the name-to-ID lookup, and resolves the
// user's identity from the creator of the first task in the inbox project.
// The inbox must contain at least one task or Init fails.
func (r *Repository) Init(ctx context.Context) error {
	projects, err := r.client.Projects(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}

	r.projects = projects
	r.ids = make(map[string]string, len(projects))
	r.inboxID = ""
	for _, project := range projects {
		r.ids[project.Name] = project.ID
		if project.IsInboxProject {
			r.inboxID = project.ID
		}
	}
	if r.inboxID == "" {
		return ErrNoInboxProject
	}

	inboxTasks, err := r.client.Tasks(ctx, r.inboxID)
	if err != nil {
		return fmt.Errorf("failed to fetch inbox tasks: %w", err)
	}
	if len(inboxTasks) == 0 {
		return fmt.Errorf("%w: add at least one task to the inbox", ErrEmptyInbox)
	}

	r.selfID = inboxTasks[0].CreatorID
	r.logger.Info("Resolved identity", "user_id", r.selfID, "projects", len(r.projects))

	return nil
}

// SelfID returns the identity resolved by Init.
func (r *Repository) SelfID() string {
	return r.selfID
}

// AllOwnedTasks fetches the user's tasks across all known projects: every
// task from the inbox, and from other projects only tasks assigned to the
// resolved identity. Order is project order then per-project fetch order.
func (r *Repository) AllOwnedTasks(ctx context.Context) ([]todoist.Task, error) {
	var all []todoist.Task
	for _, project := range r.projects {
		tasks, err := r.client.Tasks(ctx, project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tasks for project %q: %w", project.Name, err)
		}

		if project.ID == r.inboxID {
			all = append(all, tasks...)
			continue
		}
		for _, task := range tasks {
			if task.AssigneeID == r.selfID {
				all = append(all, task)
			}
		}
	}
	return all, nil
}
