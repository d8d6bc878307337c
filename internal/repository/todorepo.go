package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chetan-code/todoweb/internal/models"
)

func todoPath(id int) string {
	return fmt.Sprintf("/todos/%d", id)
}

// FetchTodos returns every todo the token's owner can see, in API order.
func (c *Client) FetchTodos(ctx context.Context, token string) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", token, nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) FetchTodo(ctx context.Context, token string, id int) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(ctx, http.MethodGet, todoPath(id), token, nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) CreateTodo(ctx context.Context, token string, in models.TodoInput) error {
	return c.do(ctx, http.MethodPost, "/todos", token, in, nil)
}

// UpdateTodo replaces every field of the todo; the API has no partial update.
func (c *Client) UpdateTodo(ctx context.Context, token string, id int, in models.TodoInput) error {
	return c.do(ctx, http.MethodPut, todoPath(id), token, in, nil)
}

func (c *Client) DeleteTodo(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), token, nil, nil)
}
