package repository

import (
	"github.com/deppfellow/todo-api/internal/server"
)

// Repositories is the container services receive.
type Repositories struct {
	Todos TodoStore
	Items ItemStore
	Users UserStore
}

// NewRepositories builds every repository over the server's database,
// whichever driver it was opened with.
func NewRepositories(s *server.Server) *Repositories {
	q := s.DB.Querier()

	return &Repositories{
		Todos: NewTodoRepository(q),
		Items: NewItemRepository(q),
		Users: NewUserRepository(q),
	}
}
