package js

import (
	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/scene"

	"github.com/dop251/goja"
)

// sceneContext holds the scene a script is building.
type sceneContext struct {
	vm    *goja.Runtime
	scene *scene.Scene
}

// registerScene installs the scene-building globals:
//
//	fixed([w0, w1, ...], opts)   uniform(count, width, opts)   balanced(columns, opts)
//	item(width, height, label)   item({width, height, label, color})
//	text(body, label)            propose(width, height)        name(str)
//
// opts may carry spacing and anchor. item and text return the new item's index.
func registerScene(vm *goja.Runtime) *sceneContext {
	ctx := &sceneContext{vm: vm, scene: &scene.Scene{Anchor: "center"}}

	vm.Set("fixed", ctx.fixed)
	vm.Set("uniform", ctx.uniform)
	vm.Set("balanced", ctx.balanced)
	vm.Set("item", ctx.item)
	vm.Set("text", ctx.text)
	vm.Set("propose", ctx.propose)
	vm.Set("name", func(call goja.FunctionCall) goja.Value {
		ctx.scene.Name = call.Argument(0).String()
		return goja.Undefined()
	})

	return ctx
}

func (c *sceneContext) throw(format string, args ...any) {
	panic(c.vm.NewTypeError(append([]any{format}, args...)...))
}

func (c *sceneContext) fixed(call goja.FunctionCall) goja.Value {
	var widths []float64
	if err := c.vm.ExportTo(call.Argument(0), &widths); err != nil {
		c.throw("fixed: column widths must be an array of numbers: %v", err)
	}
	if len(widths) == 0 {
		c.throw("fixed: at least one column width is required")
	}
	c.scene.Kind = scene.KindFixed
	c.scene.ColumnWidths = widths
	c.scene.Columns = 0
	c.scene.ColumnWidth = nil
	c.applyOptions("fixed", call.Argument(1))
	return goja.Undefined()
}

func (c *sceneContext) uniform(call goja.FunctionCall) goja.Value {
	count := call.Argument(0).ToInteger()
	if count < 1 {
		c.throw("uniform: column count must be at least 1, got %d", count)
	}
	if goja.IsUndefined(call.Argument(1)) {
		c.throw("uniform: column width is required")
	}
	width := call.Argument(1).ToFloat()
	c.scene.Kind = scene.KindFixed
	c.scene.ColumnWidths = nil
	c.scene.Columns = int(count)
	c.scene.ColumnWidth = &width
	c.applyOptions("uniform", call.Argument(2))
	return goja.Undefined()
}

func (c *sceneContext) balanced(call goja.FunctionCall) goja.Value {
	count := call.Argument(0).ToInteger()
	if count < 1 {
		c.throw("balanced: column count must be at least 1, got %d", count)
	}
	c.scene.Kind = scene.KindBalanced
	c.scene.ColumnWidths = nil
	c.scene.ColumnWidth = nil
	c.scene.Columns = int(count)
	c.applyOptions("balanced", call.Argument(1))
	return goja.Undefined()
}

func (c *sceneContext) applyOptions(fn string, v goja.Value) {
	if isAbsent(v) {
		return
	}
	obj := v.ToObject(c.vm)
	if s := obj.Get("spacing"); !isAbsent(s) {
		c.scene.Spacing = s.ToFloat()
	}
	if a := obj.Get("anchor"); !isAbsent(a) {
		if _, err := geom.ParseAnchor(a.String()); err != nil {
			c.throw("%s: %v", fn, err)
		}
		c.scene.Anchor = a.String()
	}
}

func (c *sceneContext) item(call goja.FunctionCall) goja.Value {
	var it scene.Item
	first := call.Argument(0)
	if obj, ok := first.(*goja.Object); ok {
		it.Width = floatProp(obj, "width")
		it.Height = floatProp(obj, "height")
		it.Label = stringProp(obj, "label")
		it.Color = stringProp(obj, "color")
	} else {
		it.Width = first.ToFloat()
		it.Height = call.Argument(1).ToFloat()
		if l := call.Argument(2); !isAbsent(l) {
			it.Label = l.String()
		}
	}
	return c.add(it)
}

func (c *sceneContext) text(call goja.FunctionCall) goja.Value {
	body := call.Argument(0)
	if isAbsent(body) || body.String() == "" {
		c.throw("text: body must be a non-empty string")
	}
	it := scene.Item{Text: body.String()}
	if l := call.Argument(1); !isAbsent(l) {
		it.Label = l.String()
	}
	return c.add(it)
}

func (c *sceneContext) add(it scene.Item) goja.Value {
	c.scene.Items = append(c.scene.Items, it)
	return c.vm.ToValue(len(c.scene.Items) - 1)
}

func (c *sceneContext) propose(call goja.FunctionCall) goja.Value {
	c.scene.Width = 0
	c.scene.Height = 0
	if w := call.Argument(0); !isAbsent(w) {
		c.scene.Width = w.ToFloat()
	}
	if h := call.Argument(1); !isAbsent(h) {
		c.scene.Height = h.ToFloat()
	}
	return goja.Undefined()
}

func isAbsent(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}

func floatProp(obj *goja.Object, key string) float64 {
	if v := obj.Get(key); !isAbsent(v) {
		return v.ToFloat()
	}
	return 0
}

func stringProp(obj *goja.Object, key string) string {
	if v := obj.Get(key); !isAbsent(v) {
		return v.String()
	}
	return ""
}
