package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/pagination"
)

// ErrInvalidInput is returned before any request is made when a payload is
// missing required fields.
var ErrInvalidInput = errors.New("invalid input")

const (
	diaryPath    = "/diary"
	habitsPath   = "/habits"
	goalsPath    = "/goals"
	todosPath    = "/todos"
	messagesPath = "/messages"
)

func listPath(base string, page, limit int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return base + "?" + q.Encode()
}

func itemPath(base string, id models.ID, suffix ...string) string {
	p := base + "/" + url.PathEscape(id.String())
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func listPage[T any](ctx context.Context, c client.Client, base string, page, limit int) (pagination.Page[T], error) {
	page, limit = pagination.Clamp(page, limit)

	var out pagination.Page[T]
	if err := c.Get(ctx, listPath(base, page, limit), &out); err != nil {
		return pagination.Page[T]{}, fmt.Errorf("list %s: %w", strings.TrimPrefix(base, "/"), err)
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	return out, nil
}

func requireID(id models.ID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return nil
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return nil
}
