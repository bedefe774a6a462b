package build

import (
	"testing"

	"github.com/arborlab/arbor/pkg/btschema"
	"github.com/arborlab/arbor/pkg/ports"
	"github.com/arborlab/arbor/pkg/registry"
)

// testDefs is the node library the build tests run against: a few composites
// and decorators with status directives, plus actions with args and slots.
const testDefs = `[
	{"name": "Sequence", "type": "Composite", "status": ["&success", "|failure", "|running"]},
	{"name": "Selector", "type": "Composite", "status": ["|success", "&failure", "|running"]},
	{"name": "Parallel", "type": "Composite"},
	{"name": "Inverter", "type": "Decorator", "children": 1, "status": ["!success", "!failure", "|running"]},
	{"name": "Log", "type": "Action", "args": [{"name": "message", "type": "string"}], "status": ["success"]},
	{"name": "Wait", "type": "Action", "args": [{"name": "duration", "type": "float"}], "status": ["success", "running"]},
	{"name": "Fail", "type": "Action", "status": ["failure"]},
	{"name": "Attack", "type": "Action", "input": ["target", "fallback?"], "status": ["success", "failure", "running"]},
	{"name": "FindTarget", "type": "Action", "output": ["target"], "status": ["success", "failure"]}
]`

func newTestDefs(t *testing.T) ports.DefSource {
	t.Helper()
	r := registry.New()
	if err := r.LoadBytes([]byte(testDefs)); err != nil {
		t.Fatalf("failed to load test definitions: %v", err)
	}
	return r
}

func parseSlotDefs(descs ...string) []btschema.SlotDef {
	return btschema.ParseSlots(descs)
}
