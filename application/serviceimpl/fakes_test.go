package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
)

var errNotFound = errors.New("record not found")

// fakeEmployeeRepo is an in-memory EmployeeRepository for service tests.
// With a linked task repo it mirrors the FK cascade and the list-time
// task count aggregation.
type fakeEmployeeRepo struct {
	employees map[uuid.UUID]*models.Employee
	tasks     *fakeTaskRepo
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[uuid.UUID]*models.Employee)}
}

func (r *fakeEmployeeRepo) add(e *models.Employee) *models.Employee {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.employees[e.ID] = e
	return e
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	r.add(employee)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return e, nil
	}
	return nil, errNotFound
}

func (r *fakeEmployeeRepo) GetByIDWithTasks(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, id uuid.UUID, employee *models.Employee) error {
	if _, ok := r.employees[id]; !ok {
		return errNotFound
	}
	r.employees[id] = employee
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.employees[id]; !ok {
		return errNotFound
	}
	delete(r.employees, id)
	if r.tasks != nil {
		for taskID, task := range r.tasks.tasks {
			if task.EmployeeID == id {
				delete(r.tasks.tasks, taskID)
			}
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]*models.Employee, error) {
	out := make([]*models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if r.tasks != nil {
			e.TaskCount = 0
			for _, task := range r.tasks.tasks {
				if task.EmployeeID == e.ID {
					e.TaskCount++
				}
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

// fakeTaskRepo is an in-memory TaskRepository for service tests.
type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeTaskRepo) add(t *models.Task) *models.Task {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tasks[t.ID] = t
	return t
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.add(task)
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	if t, ok := r.tasks[id]; ok {
		return t, nil
	}
	return nil, errNotFound
}

func (r *fakeTaskRepo) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	if _, ok := r.tasks[id]; !ok {
		return errNotFound
	}
	r.tasks[id] = task
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.tasks[id]; !ok {
		return errNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) List(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	out := make([]*models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.EmployeeID != uuid.Nil && t.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTaskRepo) ListRecent(ctx context.Context, limit int) ([]*models.Task, error) {
	all, _ := r.List(ctx, repositories.TaskFilter{})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeTaskRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]*models.Task, error) {
	out := make([]*models.Task, 0)
	for _, t := range r.tasks {
		if t.DueDate != nil && t.DueDate.Before(asOf) && t.Status != models.StatusDone {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.tasks)), nil
}

func (r *fakeTaskRepo) CountByStatus(ctx context.Context, status models.TaskStatus) (int64, error) {
	var n int64
	for _, t := range r.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeStatsCache is an in-memory StatsCache tracking invalidations.
type fakeStatsCache struct {
	store map[string][]byte
	dels  int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{store: make(map[string][]byte)}
}

func (c *fakeStatsCache) GetJSON(ctx context.Context, key string, target interface{}) error {
	data, ok := c.store[key]
	if !ok {
		return errNotFound
	}
	return json.Unmarshal(data, target)
}

func (c *fakeStatsCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = data
	return nil
}

func (c *fakeStatsCache) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	c.dels++
	return nil
}

// recordingPublisher captures published task events.
type recordingPublisher struct {
	events []*ports.TaskEvent
}

func (p *recordingPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() {}
