package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolforge/reuse/pkg/errors"
	"github.com/poolforge/reuse/pkg/pool"
)

type fakeWidget struct {
	template string
	attach   pool.Attachment
	visible  bool
}

type fakeFactory struct {
	calls []string
	make  func(templateID string, attach pool.Attachment) interface{}
}

func (f *fakeFactory) CreateWidget(templateID string, attach pool.Attachment) interface{} {
	f.calls = append(f.calls, templateID)
	if f.make != nil {
		return f.make(templateID, attach)
	}
	return &fakeWidget{template: templateID, attach: attach}
}

func TestWidgets_DelegatesToFactory(t *testing.T) {
	reg := pool.NewRegistry()
	factory := &fakeFactory{}

	p, err := pool.Widgets[*fakeWidget](reg, "panels", factory, "panels/settings", "root")
	require.NoError(t, err)

	w := p.Get()
	assert.Equal(t, "panels/settings", w.template)
	assert.Equal(t, pool.Attachment("root"), w.attach)
	require.Len(t, factory.calls, 1)

	// A recycled widget must not hit the factory again.
	p.Put(w)
	assert.Same(t, w, p.Get())
	assert.Len(t, factory.calls, 1)
}

func TestWidgets_RequiresFactory(t *testing.T) {
	reg := pool.NewRegistry()

	_, err := pool.Widgets[*fakeWidget](reg, "panels", nil, "panels/settings", nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestWidgets_FactoryTypeMismatchPanics(t *testing.T) {
	reg := pool.NewRegistry()
	factory := &fakeFactory{
		make: func(string, pool.Attachment) interface{} { return "not a widget" },
	}

	p, err := pool.Widgets[*fakeWidget](reg, "broken", factory, "panels/settings", nil)
	require.NoError(t, err)

	assert.Panics(t, func() { p.Get() })
}

func TestWidgets_Hooks(t *testing.T) {
	reg := pool.NewRegistry()
	factory := &fakeFactory{}

	var activations, resets int
	p, err := pool.Widgets[*fakeWidget](reg, "panels", factory, "panels/settings", nil,
		pool.WithWidgetOnGet(func(w *fakeWidget) {
			activations++
			w.visible = true
		}),
		pool.WithWidgetReset(func(w *fakeWidget) {
			resets++
			w.visible = false
		}),
	)
	require.NoError(t, err)

	w := p.Get()
	assert.True(t, w.visible)
	assert.Equal(t, 1, activations)

	p.Put(w)
	assert.False(t, w.visible)
	assert.Equal(t, 1, resets)

	p.Get()
	assert.Equal(t, 2, activations)
}

func TestWidgetsWith_CustomCreate(t *testing.T) {
	reg := pool.NewRegistry()

	created := 0
	p, err := pool.WidgetsWith(reg, "custom", func() *fakeWidget {
		created++
		return &fakeWidget{template: "custom"}
	})
	require.NoError(t, err)

	w := p.Get()
	assert.Equal(t, "custom", w.template)
	assert.Equal(t, 1, created)
	p.Put(w)
	assert.Same(t, w, p.Get())
	assert.Equal(t, 1, created)
}

func TestPutWidget(t *testing.T) {
	reg := pool.NewRegistry()
	factory := &fakeFactory{}

	p, err := pool.Widgets[*fakeWidget](reg, "panels", factory, "panels/settings", nil)
	require.NoError(t, err)

	t.Run("routes to the registered pool", func(t *testing.T) {
		w := p.Get()
		require.NoError(t, pool.PutWidget(reg, "panels", w))
		assert.Equal(t, 1, p.Len())
	})

	t.Run("unregistered key is an error", func(t *testing.T) {
		err := pool.PutWidget(reg, "never-created", &fakeWidget{})
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeUnregistered))
	})

	t.Run("wrong element type is a mismatch", func(t *testing.T) {
		err := pool.PutWidget(reg, "panels", "not a widget")
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeMismatch))
	})
}
