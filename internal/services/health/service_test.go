package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestStatusAllUp(t *testing.T) {
	svc := NewService(
		Check{Name: "database", Pinger: pingFunc(func(context.Context) error { return nil })},
		Check{Name: "cache", Pinger: nil},
	)

	ok, deps := svc.Status(context.Background())
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"database": "up"}, deps)
}

func TestStatusReportsDownDependency(t *testing.T) {
	svc := NewService(
		Check{Name: "database", Pinger: pingFunc(func(context.Context) error { return nil })},
		Check{Name: "cache", Pinger: pingFunc(func(context.Context) error { return errors.New("refused") })},
	)

	ok, deps := svc.Status(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "up", deps["database"])
	assert.Equal(t, "down", deps["cache"])
}
