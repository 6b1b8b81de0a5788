package service

import (
	"github.com/deppfellow/todo-api/internal/lib/job"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
)

type Services struct {
	Auth  *AuthService
	Todos *TodoService
	Items *ItemService
	Job   *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s, repos.Users)
	todoService := NewTodoService(repos.Todos)

	return &Services{
		Job:   s.Job,
		Auth:  authService,
		Todos: todoService,
		Items: NewItemService(todoService, repos.Items),
	}, nil
}
