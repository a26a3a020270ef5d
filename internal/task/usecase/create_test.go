package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
	"smart-todo-backend/internal/task/usecase"
	"smart-todo-backend/pkg/datemath"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo records every create in order and can fail selectively.
type mockRepo struct {
	mu          sync.Mutex
	creates     []repository.CreateTaskOptions
	failPrimary bool
	failTitles  map[string]bool
	emptyID     bool
	nextID      int
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates = append(m.creates, opt)

	isPrimary := opt.Metadata.Type != "subtask"
	if isPrimary && m.failPrimary {
		return model.Task{}, errors.New("insert failed")
	}
	if m.failTitles[opt.Task] {
		return model.Task{}, errors.New("insert failed")
	}
	if isPrimary && m.emptyID {
		return model.Task{Task: opt.Task}, nil
	}
	m.nextID++
	return model.Task{ID: "t-" + string(rune('0'+m.nextID)), UserID: opt.UserID, Task: opt.Task}, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	if id == "missing" {
		return model.Task{}, repository.ErrNotFound
	}
	return model.Task{ID: id}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	return nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return []model.Task{{ID: "t-1", UserID: opt.UserID}}, nil
}

func (m *mockRepo) createdTitles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	titles := make([]string, 0, len(m.creates))
	for _, c := range m.creates {
		titles = append(titles, c.Task)
	}
	return titles
}

func newUseCase(repo repository.TaskRepository) task.UseCase {
	dm, _ := datemath.NewParser("UTC")
	return usecase.New(&mockLogger{}, repo, dm)
}

func TestCompose(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("plain input without a parse result", func(t *testing.T) {
		uc := newUseCase(&mockRepo{})

		out := uc.Compose(sc, task.ComposeInput{RawText: "  water the plants  "})
		if out.Draft.Task != "water the plants" {
			t.Errorf("unexpected task %q", out.Draft.Task)
		}
		if out.Draft.AIEnhanced {
			t.Error("plain draft must not be marked AI-enhanced")
		}
		if out.Draft.Priority != model.PriorityMedium {
			t.Errorf("expected medium priority, got %q", out.Draft.Priority)
		}
		if len(out.Subtasks) != 0 {
			t.Errorf("expected no subtasks, got %d", len(out.Subtasks))
		}
	})

	t.Run("parse result drives the draft", func(t *testing.T) {
		uc := newUseCase(&mockRepo{})

		parsed := &model.ParsedTask{
			TaskName:    "Call Sarah",
			Date:        "tomorrow",
			Priority:    model.PriorityHigh,
			Suggestions: []string{"Find her number", "Prepare questions", "Send a summary"},
		}
		out := uc.Compose(sc, task.ComposeInput{
			RawText:             "call sarah tomorrow about the urgent thing",
			Parsed:              parsed,
			SelectedSuggestions: []int{0, 2, 7},
		})

		if out.Draft.Task != "Call Sarah" {
			t.Errorf("unexpected task %q", out.Draft.Task)
		}
		if !out.Draft.AIEnhanced || !out.Draft.Metadata.AIParsed {
			t.Error("expected AI provenance on the draft")
		}
		if out.Draft.Metadata.OriginalInput != "call sarah tomorrow about the urgent thing" {
			t.Errorf("unexpected original input %q", out.Draft.Metadata.OriginalInput)
		}
		if out.Draft.Date == "tomorrow" || out.Draft.Date == "" {
			t.Errorf("expected an absolute date, got %q", out.Draft.Date)
		}
		if len(out.Subtasks) != 2 { // index 7 is out of range
			t.Fatalf("expected 2 subtasks, got %d", len(out.Subtasks))
		}
		for _, sub := range out.Subtasks {
			if sub.Priority != model.PriorityLow {
				t.Errorf("expected low priority subtask, got %q", sub.Priority)
			}
			if sub.Metadata.Type != "subtask" || !sub.Metadata.AIGenerated {
				t.Errorf("unexpected subtask metadata %+v", sub.Metadata)
			}
			if sub.Metadata.ParentTask != "Call Sarah" {
				t.Errorf("subtask metadata must name the primary task, got %q", sub.Metadata.ParentTask)
			}
			if sub.ParentTaskID != "" {
				t.Error("parent ID must stay empty until the primary task exists")
			}
			if sub.IdempotencyKey == "" {
				t.Error("expected an idempotency key")
			}
		}
	})

	t.Run("idempotency keys are deterministic", func(t *testing.T) {
		uc := newUseCase(&mockRepo{})
		in := task.ComposeInput{
			RawText:             "plan the retro",
			Parsed:              &model.ParsedTask{TaskName: "Plan retro", Suggestions: []string{"Book a room"}},
			SelectedSuggestions: []int{0},
		}

		a := uc.Compose(sc, in)
		b := uc.Compose(sc, in)
		if a.Subtasks[0].IdempotencyKey != b.Subtasks[0].IdempotencyKey {
			t.Error("expected identical keys for identical input")
		}

		c := uc.Compose(model.Scope{UserID: "u2"}, in)
		if a.Subtasks[0].IdempotencyKey == c.Subtasks[0].IdempotencyKey {
			t.Error("expected different keys for different users")
		}
	})
}

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	subtasks := []model.SubtaskDraft{
		{Task: "Prepare agenda", Priority: model.PriorityLow, Metadata: model.DraftMetadata{Type: "subtask", AIGenerated: true}},
		{Task: "Send invites", Priority: model.PriorityLow, Metadata: model.DraftMetadata{Type: "subtask", AIGenerated: true}},
		{Task: "Book a room", Priority: model.PriorityLow, Metadata: model.DraftMetadata{Type: "subtask", AIGenerated: true}},
	}

	t.Run("primary task is persisted before subtasks", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newUseCase(repo)

		out, err := uc.Create(context.Background(), sc, task.CreateInput{
			Draft:    model.TaskDraft{Task: "Team meeting"},
			Subtasks: subtasks,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID == "" {
			t.Fatal("expected a created primary task")
		}
		if len(out.Subtasks) != 3 {
			t.Errorf("expected 3 subtasks, got %d", len(out.Subtasks))
		}

		titles := repo.createdTitles()
		if titles[0] != "Team meeting" {
			t.Errorf("primary task must be created first, got order %v", titles)
		}
	})

	t.Run("subtasks reference the persisted parent", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newUseCase(repo)

		out, err := uc.Create(context.Background(), sc, task.CreateInput{
			Draft: model.TaskDraft{Task: "Team meeting"},
			Subtasks: []model.SubtaskDraft{{
				Task:     "Prepare agenda",
				Priority: model.PriorityLow,
				Metadata: model.DraftMetadata{ParentTask: "Team meeting", Type: "subtask", AIGenerated: true},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.mu.Lock()
		defer repo.mu.Unlock()
		if len(repo.creates) != 2 {
			t.Fatalf("expected 2 creates, got %d", len(repo.creates))
		}
		if repo.creates[1].ParentTaskID != out.Task.ID {
			t.Errorf("subtask parent ID %q does not match task ID %q", repo.creates[1].ParentTaskID, out.Task.ID)
		}
		if repo.creates[1].Metadata.ParentTask != "Team meeting" {
			t.Errorf("subtask metadata must keep the primary task text, got %q", repo.creates[1].Metadata.ParentTask)
		}
	})

	t.Run("primary failure skips all subtasks", func(t *testing.T) {
		repo := &mockRepo{failPrimary: true}
		uc := newUseCase(repo)

		_, err := uc.Create(context.Background(), sc, task.CreateInput{
			Draft:    model.TaskDraft{Task: "Team meeting"},
			Subtasks: subtasks,
		})
		if err == nil {
			t.Fatal("expected primary create error")
		}
		if n := len(repo.createdTitles()); n != 1 {
			t.Errorf("expected only the primary attempt, got %d creates", n)
		}
	})

	t.Run("missing parent ID drops subtasks without failing", func(t *testing.T) {
		repo := &mockRepo{emptyID: true}
		uc := newUseCase(repo)

		out, err := uc.Create(context.Background(), sc, task.CreateInput{
			Draft:    model.TaskDraft{Task: "Team meeting"},
			Subtasks: subtasks,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Subtasks) != 0 || len(out.FailedSubtasks) != 0 {
			t.Errorf("expected subtasks to be skipped entirely, got %+v", out)
		}
		if n := len(repo.createdTitles()); n != 1 {
			t.Errorf("expected no subtask create calls, got %d total", n)
		}
	})

	t.Run("failing sibling does not block the others", func(t *testing.T) {
		repo := &mockRepo{failTitles: map[string]bool{"Send invites": true}}
		uc := newUseCase(repo)

		out, err := uc.Create(context.Background(), sc, task.CreateInput{
			Draft:    model.TaskDraft{Task: "Team meeting"},
			Subtasks: subtasks,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Subtasks) != 2 {
			t.Errorf("expected 2 created subtasks, got %d", len(out.Subtasks))
		}
		if len(out.FailedSubtasks) != 1 || out.FailedSubtasks[0] != "Send invites" {
			t.Errorf("unexpected failures %v", out.FailedSubtasks)
		}
	})

	t.Run("empty draft is rejected", func(t *testing.T) {
		uc := newUseCase(&mockRepo{})
		_, err := uc.Create(context.Background(), sc, task.CreateInput{Draft: model.TaskDraft{Task: "   "}})
		if err != task.ErrEmptyTask {
			t.Errorf("expected ErrEmptyTask, got %v", err)
		}
	})
}

func TestManage(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	uc := newUseCase(&mockRepo{})

	t.Run("update missing task", func(t *testing.T) {
		_, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: "missing"})
		if err != task.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("list scopes to the user", func(t *testing.T) {
		out, err := uc.List(context.Background(), sc, task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 || out.Tasks[0].UserID != "u1" {
			t.Errorf("unexpected listing %+v", out)
		}
	})
}
