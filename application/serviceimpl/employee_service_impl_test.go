package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

func TestCreateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	employee, err := svc.CreateEmployee(context.Background(), &dto.CreateEmployeeRequest{
		Name:  "Jane Smith",
		Email: "jane@company.com",
		Role:  "MANAGER",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
	if employee.Role != models.RoleManager {
		t.Errorf("role = %s, want MANAGER", employee.Role)
	}
	if employee.Password != "" {
		t.Error("employee created without credentials should have no password")
	}
}

func TestCreateEmployeeDefaultRole(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	employee, err := svc.CreateEmployee(context.Background(), &dto.CreateEmployeeRequest{
		Name:  "Bob Johnson",
		Email: "bob@company.com",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
	if employee.Role != models.RoleUser {
		t.Errorf("default role = %s, want USER", employee.Role)
	}
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.add(&models.Employee{Name: "Jane", Email: "jane@company.com"})
	svc := NewEmployeeService(repo, nil)

	_, err := svc.CreateEmployee(context.Background(), &dto.CreateEmployeeRequest{
		Name:  "Other Jane",
		Email: "jane@company.com",
	})
	if !errors.Is(err, models.ErrEmailTaken) {
		t.Errorf("CreateEmployee() error = %v, want ErrEmailTaken", err)
	}
}

func TestUpdateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	jane := repo.add(&models.Employee{Name: "Jane", Email: "jane@company.com", Role: models.RoleUser})
	repo.add(&models.Employee{Name: "Bob", Email: "bob@company.com", Role: models.RoleUser})
	svc := NewEmployeeService(repo, nil)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := svc.UpdateEmployee(context.Background(), jane.ID, &dto.UpdateEmployeeRequest{Role: "MANAGER"})
		if err != nil {
			t.Fatalf("UpdateEmployee() error = %v", err)
		}
		if updated.Role != models.RoleManager {
			t.Errorf("role = %s, want MANAGER", updated.Role)
		}
		if updated.Name != "Jane" || updated.Email != "jane@company.com" {
			t.Errorf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("own email unchanged is allowed", func(t *testing.T) {
		_, err := svc.UpdateEmployee(context.Background(), jane.ID, &dto.UpdateEmployeeRequest{Email: "jane@company.com"})
		if err != nil {
			t.Errorf("UpdateEmployee() error = %v", err)
		}
	})

	t.Run("taking another employee's email fails", func(t *testing.T) {
		_, err := svc.UpdateEmployee(context.Background(), jane.ID, &dto.UpdateEmployeeRequest{Email: "bob@company.com"})
		if !errors.Is(err, models.ErrEmailTaken) {
			t.Errorf("UpdateEmployee() error = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.UpdateEmployee(context.Background(), uuid.New(), &dto.UpdateEmployeeRequest{Name: "x"})
		if !errors.Is(err, models.ErrEmployeeNotFound) {
			t.Errorf("UpdateEmployee() error = %v, want ErrEmployeeNotFound", err)
		}
	})
}

func TestDeleteEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	taskRepo := newFakeTaskRepo()
	repo.tasks = taskRepo
	jane := repo.add(&models.Employee{Name: "Jane", Email: "jane@company.com"})
	bob := repo.add(&models.Employee{Name: "Bob", Email: "bob@company.com"})
	taskRepo.add(&models.Task{Title: "Jane task 1", Status: models.StatusTodo, EmployeeID: jane.ID})
	taskRepo.add(&models.Task{Title: "Jane task 2", Status: models.StatusDone, EmployeeID: jane.ID})
	taskRepo.add(&models.Task{Title: "Bob task", Status: models.StatusTodo, EmployeeID: bob.ID})
	svc := NewEmployeeService(repo, nil)

	if err := svc.DeleteEmployee(context.Background(), jane.ID); err != nil {
		t.Fatalf("DeleteEmployee() error = %v", err)
	}

	// owned tasks go with the employee, nobody else's do
	remaining, err := taskRepo.List(context.Background(), repositories.TaskFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("len(remaining) = %d, want 1", len(remaining))
	}
	for _, task := range remaining {
		if task.EmployeeID == jane.ID {
			t.Errorf("orphaned task %q survived owner deletion", task.Title)
		}
	}

	if err := svc.DeleteEmployee(context.Background(), jane.ID); !errors.Is(err, models.ErrEmployeeNotFound) {
		t.Errorf("second DeleteEmployee() error = %v, want ErrEmployeeNotFound", err)
	}
}

func TestUpdateEmployeeDropsStatsCache(t *testing.T) {
	repo := newFakeEmployeeRepo()
	jane := repo.add(&models.Employee{Name: "Jane", Email: "jane@company.com", Role: models.RoleUser})
	cache := newFakeStatsCache()
	if err := cache.SetJSON(context.Background(), DashboardStatsCacheKey, dto.DashboardStats{TotalTasks: 1}, time.Minute); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}
	svc := NewEmployeeService(repo, cache)

	if _, err := svc.UpdateEmployee(context.Background(), jane.ID, &dto.UpdateEmployeeRequest{Name: "Janet"}); err != nil {
		t.Fatalf("UpdateEmployee() error = %v", err)
	}

	if _, ok := cache.store[DashboardStatsCacheKey]; ok {
		t.Error("stats cache entry survived an employee rename")
	}
}

func TestListEmployeesTaskCounts(t *testing.T) {
	repo := newFakeEmployeeRepo()
	taskRepo := newFakeTaskRepo()
	repo.tasks = taskRepo
	jane := repo.add(&models.Employee{Name: "Jane", Email: "jane@company.com"})
	repo.add(&models.Employee{Name: "Bob", Email: "bob@company.com"})
	taskRepo.add(&models.Task{Title: "T1", Status: models.StatusTodo, EmployeeID: jane.ID})
	taskRepo.add(&models.Task{Title: "T2", Status: models.StatusDone, EmployeeID: jane.ID})
	svc := NewEmployeeService(repo, nil)

	employees, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	for _, e := range employees {
		want := int64(0)
		if e.ID == jane.ID {
			want = 2
		}
		if e.TaskCount != want {
			t.Errorf("%s TaskCount = %d, want %d", e.Name, e.TaskCount, want)
		}
	}
}

func TestListEmployees(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.add(&models.Employee{Name: "Jane", Email: "jane@company.com"})
	repo.add(&models.Employee{Name: "Bob", Email: "bob@company.com"})
	svc := NewEmployeeService(repo, nil)

	employees, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	if len(employees) != 2 {
		t.Errorf("len(employees) = %d, want 2", len(employees))
	}
}
